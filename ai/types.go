package ai

// KeywordKinds lists the kinds of terms keyword extraction should prefer.
// The list is embedded in the extraction prompt to steer models toward
// searchable, topical keywords rather than generic vocabulary.
var KeywordKinds = []string{
	"company",
	"person",
	"place",
	"organization",
	"market",
	"industry",
	"commodity",
	"currency",
	"technology",
	"product",
	"policy",
	"regulation",
	"event",
}
