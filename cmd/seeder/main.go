package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/tessella/newsdex"
	"github.com/tessella/newsdex/config"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/ingestion"
)

// sampleArticles is the built-in demo corpus, used when no -src file is given.
// Publication times are staggered backwards from now at seeding time.
var sampleArticles = []struct {
	Title   string
	Summary string
	Source  string
}{
	{"Tesla stock surges on record quarterly deliveries", "Shares jumped after the carmaker reported deliveries well above analyst estimates.", "Reuters"},
	{"Oil prices steady as OPEC holds output targets", "Crude benchmarks were little changed after the cartel left production quotas untouched.", "Bloomberg"},
	{"Fed signals rates will stay higher for longer", "Policymakers pointed to persistent services inflation as a reason for caution.", "WSJ"},
	{"Chip exports rebound on AI server demand", "Semiconductor shipments grew for the third straight month, led by accelerator orders.", "Nikkei Asia"},
	{"Global markets rally after soft inflation print", "Equities climbed across Europe and Asia as traders priced in earlier rate cuts.", "FT"},
	{"Bank earnings beat expectations despite loan worries", "Major lenders posted stronger trading revenue even as credit provisions rose.", "CNBC"},
	{"Housing market cools as mortgage rates bite", "Pending home sales fell for a fourth month under the weight of borrowing costs.", "AP"},
	{"Startup funding crash deepens in early-stage rounds", "Seed valuations slid again as investors retreated to safer late-stage deals.", "TechCrunch"},
	{"Retail sales climb on strong holiday spending", "Consumers shrugged off higher prices, lifting sales above forecasts.", "Reuters"},
	{"Airline profits soar on transatlantic travel boom", "Carriers raised guidance as premium cabin demand hit record levels.", "Bloomberg"},
	{"Union strike halts production at major auto plants", "Walkouts spread to three more factories as contract talks stalled.", "AP"},
	{"Streaming service raises prices for third time", "The company said higher fees would fund a larger slate of original shows.", "The Verge"},
	{"Quantum computing milestone claimed by research lab", "Scientists demonstrated error correction across a record number of qubits.", "Nature News"},
	{"Drought fears grow as reservoir levels hit new lows", "Water managers warned of restrictions if winter rains disappoint again.", "Guardian"},
	{"Electric grid strained by record summer heat", "Operators asked households to cut evening usage as demand peaked.", "AP"},
	{"Biotech shares crash after trial setback", "The drugmaker lost a third of its value when late-stage results missed endpoints.", "Reuters"},
	{"Cloud provider outage disrupts payment systems", "A regional failure knocked out checkout services for several hours.", "The Verge"},
	{"Wind farm project wins approval after long review", "Regulators cleared the offshore development over fishing industry objections.", "BBC"},
	{"Food prices ease as supply chains normalize", "Grocery inflation slowed to its lowest pace in two years.", "FT"},
	{"Cybersecurity firm warns of new ransomware wave", "Researchers tracked a surge in attacks on hospital networks.", "Wired"},
	{"Smartphone shipments fall for sixth straight quarter", "Weak upgrade demand hit every major vendor except the premium tier.", "IDC Wire"},
	{"Central bank intervenes to steady currency slide", "The surprise move briefly lifted the currency off multi-year lows.", "Reuters"},
	{"Rail freight volumes climb on industrial recovery", "Carload traffic rose as factories rebuilt depleted inventories.", "WSJ"},
	{"Vaccine rollout expands to rural clinics", "Health officials opened thousands of new vaccination sites this week.", "AP"},
	{"Game studio lays off a tenth of its workforce", "Executives blamed slower subscription growth for the cuts.", "The Verge"},
	{"Soybean harvest hits record on favorable weather", "Growers reported yields far above the five-year average.", "Bloomberg"},
	{"Shipping rates spike as canal restrictions continue", "Container costs doubled on routes forced around the bottleneck.", "FT"},
	{"Solar installations break annual record early", "Panel deployments passed last year's total with a quarter to spare.", "Guardian"},
	{"Insurer exits storm-prone coastal markets", "The company cited unsustainable catastrophe losses in its withdrawal notice.", "AP"},
	{"Space launch startup wins military contract", "The award covers a dozen responsive-launch missions over three years.", "Ars Technica"},
	{"Steel tariffs spark fears of trade retaliation", "Trading partners threatened countermeasures within days of the announcement.", "Reuters"},
	{"Apartment construction booms in sunbelt cities", "Permits hit record levels as builders chased migration inflows.", "WSJ"},
	{"Grocery chains test checkout-free store formats", "Pilots expanded to ten more locations after strong early results.", "CNBC"},
	{"Battery recycling plant opens with state backing", "The facility will process packs from a quarter-million vehicles a year.", "Bloomberg"},
	{"Wildfire smoke blankets midwest cities again", "Air quality alerts stretched across six states for a second week.", "AP"},
	{"Bond yields retreat from decade highs", "Treasuries rallied as auction demand came in stronger than feared.", "FT"},
	{"Messaging app adds end-to-end encrypted backups", "The rollout closes a long-standing gap in the platform's privacy story.", "Wired"},
	{"Port workers reach tentative labor deal", "The agreement averts a strike that threatened holiday imports.", "Reuters"},
	{"Luxury sales slow as shoppers trade down", "High-end houses flagged softer demand in their largest market.", "Bloomberg"},
	{"Transit ridership recovers to pre-pandemic levels", "Weekend leisure trips drove the milestone, officials said.", "Guardian"},
}

var (
	seedFileName = flag.String("src", "", "JSON file with an array of articles to seed")
	configPath   = flag.String("config", "", "path to a YAML config file")
	userID       = flag.String("user", "demo", "user to seed articles for")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// seedArticle is the JSON shape accepted by -src files.
type seedArticle struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

func (s seedArticle) toArticle() *core.Article {
	return &core.Article{
		Title:       s.Title,
		Summary:     s.Summary,
		Content:     s.Content,
		Source:      s.Source,
		URL:         s.URL,
		PublishedAt: s.PublishedAt,
	}
}

// articlesFromFile returns an iterator over articles in a JSON array file.
// Elements are decoded one at a time, so large files stream.
func articlesFromFile(filename string) (iter.Seq[*core.Article], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(*core.Article) bool) {
		defer f.Close()
		dec := json.NewDecoder(f)
		if _, err := dec.Token(); err != nil { // opening bracket
			slog.Error("error reading seed file", "file", filename, "err", err)
			return
		}
		for dec.More() {
			var sa seedArticle
			if err := dec.Decode(&sa); err != nil {
				slog.Error("error decoding seed article", "file", filename, "err", err)
				return
			}
			if !yield(sa.toArticle()) {
				return
			}
		}
	}, nil
}

// articlesFromSamples returns an iterator over the built-in corpus, with
// publication times staggered two hours apart, newest first.
func articlesFromSamples() iter.Seq[*core.Article] {
	base := time.Now().UTC()
	return func(yield func(*core.Article) bool) {
		for i, sample := range sampleArticles {
			article := &core.Article{
				Title:       sample.Title,
				Summary:     sample.Summary,
				Source:      sample.Source,
				PublishedAt: base.Add(-time.Duration(i) * 2 * time.Hour),
			}
			if !yield(article) {
				return
			}
		}
	}
}

// ingestBatched reads from a source iterator and ingests articles in batches.
// Returns how many articles were newly stored and how many were seen.
func ingestBatched(ctx context.Context, pipeline *ingestion.Pipeline, userID string, source iter.Seq[*core.Article], batchSize int) (added, total int, err error) {
	batch := make([]*core.Article, 0, batchSize)

	flush := func() error {
		stored, err := pipeline.Ingest(ctx, userID, batch...)
		if err != nil {
			return err
		}
		added += len(stored)
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	for article := range source {
		batch = append(batch, article)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return added, total, err
			}
		}
	}

	// Process any remaining articles
	if len(batch) > 0 {
		if err := flush(); err != nil {
			return added, total, err
		}
	}

	return added, total, nil
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			panic(err)
		}
	}

	db, err := newsdex.NewDatabaseFromConfig(cfg)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ingester, err := db.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer ingester.Release()

	ctx := context.Background()

	// Determine source of seed data
	var source iter.Seq[*core.Article]
	if *seedFileName != "" {
		source, err = articlesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = articlesFromSamples()
	}

	added, total, err := ingestBatched(ctx, ingester, *userID, source, 10)
	if err != nil {
		panic(err)
	}

	// Let queued sentiment and keyword work land before exiting
	ingester.Wait()

	fmt.Printf("Seeded %d new articles (%d already present)\n", added, total-added)
}
