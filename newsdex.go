// Copyright 2025 Tessella Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package newsdex

import (
	"io"
	"log/slog"

	"github.com/tessella/newsdex/ai"
	"github.com/tessella/newsdex/ai/openai"
	"github.com/tessella/newsdex/config"
	"github.com/tessella/newsdex/enrich"
	"github.com/tessella/newsdex/history"
	"github.com/tessella/newsdex/ingestion"
	"github.com/tessella/newsdex/search"
	"github.com/tessella/newsdex/storage"
	"github.com/tessella/newsdex/storage/badger"
	"github.com/tessella/newsdex/suggest"
)

// Database bundles the article store, the durable history archive, the
// enrichment cursors, and the AI provider behind one handle, and builds
// the search engine, ingestion pipeline, and enricher on top of them.
type Database struct {
	backend     *badger.Backend
	articleRepo storage.ArticleRepository
	historyRepo storage.HistoryArchive
	cursorRepo  storage.CursorRepository
	provider    ai.Provider
	cfg         *config.Config
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
}

// WithAIConfig overrides the AI service settings derived from the
// configuration file.
func WithAIConfig(aiConfig *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = aiConfig
	}
}

// WithProvider supplies a ready AI provider instead of building one.
// The Database takes ownership and closes it with the rest.
func WithProvider(provider ai.Provider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// NewDatabase opens a database at filePath with default settings.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	cfg := config.Default()
	cfg.Storage.Path = filePath
	return NewDatabaseFromConfig(cfg, opts...)
}

// NewDatabaseFromConfig opens a database described by a loaded configuration.
// A nil cfg uses config.Default().
func NewDatabaseFromConfig(cfg *config.Config, opts ...DatabaseOption) (*Database, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	// Apply options
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(cfg.Storage.Path, cfg.Storage.InMemory)
	if err != nil {
		return nil, err
	}

	articleRepo := badger.NewArticleRepository(backend)
	historyRepo := badger.NewHistoryRepository(backend)
	cursorRepo := badger.NewCursorRepository(backend)

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		aiConfig := options.aiConfig
		if aiConfig == nil {
			aiConfig = ai.NewConfig(cfg.ProviderOptions()...)
		}
		provider, err = openai.NewProvider(aiConfig)
		if err != nil {
			cursorRepo.Close()
			historyRepo.Close()
			articleRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:     backend,
		articleRepo: articleRepo,
		historyRepo: historyRepo,
		cursorRepo:  cursorRepo,
		provider:    provider,
		cfg:         cfg,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.cursorRepo.Close(); err != nil {
		db.logger.Error("error closing cursor repository", "err", err)
		return err
	}
	if err := db.historyRepo.Close(); err != nil {
		db.logger.Error("error closing history repository", "err", err)
		return err
	}
	if err := db.articleRepo.Close(); err != nil {
		db.logger.Error("error closing article repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ArticleRepository() storage.ArticleRepository {
	return db.articleRepo
}

func (db *Database) HistoryArchive() storage.HistoryArchive {
	return db.historyRepo
}

func (db *Database) CursorRepository() storage.CursorRepository {
	return db.cursorRepo
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.articleRepo, db.provider, opts...)
}

// NewSearchEngine builds a search engine whose history store tees into the
// durable archive and feeds past queries back into the suggestion trie.
// Each call creates an independent engine with its own trie and history.
func (db *Database) NewSearchEngine(opts ...search.Option) (*search.Engine, error) {
	trie := suggest.NewTrie()

	historyOpts := append(db.cfg.HistoryOptions(),
		history.WithTermSink(trie),
		history.WithArchive(db.historyRepo),
		history.WithLogger(db.logger),
	)
	store, err := history.NewStore(historyOpts...)
	if err != nil {
		return nil, err
	}

	engineOpts := append(db.cfg.EngineOptions(),
		search.WithTrie(trie),
		search.WithHistoryStore(store),
		search.WithLogger(db.logger),
	)
	engineOpts = append(engineOpts, opts...)
	return search.NewEngine(db.articleRepo, engineOpts...)
}

// NewEnricher builds a batch enricher over the stored corpus. A nil config
// uses enrich.DefaultConfig(); progress may be nil to discard progress output.
func (db *Database) NewEnricher(config *enrich.Config, progress io.Writer) *enrich.Enricher {
	if progress == nil {
		progress = io.Discard
	}
	return enrich.NewEnricher(db.articleRepo, db.provider, db.cursorRepo, config, progress)
}
