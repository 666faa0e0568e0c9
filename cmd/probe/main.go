package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/oauth2"

	"departly/internal/domain/entity"
	"departly/internal/infrastructure/config"
	"departly/internal/infrastructure/credentials"
	"departly/internal/infrastructure/persistence"
	adapter "departly/internal/interface/repository"
	"departly/pkg/guard"
	"departly/pkg/logger"
)

// sampler is the slice of the attraction adapters the probe needs.
type sampler interface {
	FindAny(ctx context.Context) (*entity.Attraction, error)
	SampleFields(ctx context.Context) (map[string]string, error)
}

// Connectivity diagnostic for the knowledge backend. Repairs credentials,
// pulls one arbitrary document under a bounded wait, and reports the
// document's fields, so a hanging credential shows up here instead of as a
// stuck production request.
func main() {
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		fail("load config: %v", err)
	}

	fmt.Printf("Departly knowledge-backend probe\n")
	fmt.Printf("backend:    %s\n", cfg.KBBackend)
	fmt.Printf("collection: %s\n", cfg.KBCollection)
	fmt.Printf("timeout:    %s\n\n", cfg.ProbeTimeout)

	ctx := context.Background()

	var store sampler
	switch cfg.KBBackend {
	case config.KBBackendFirestore:
		if cfg.GoogleCredentialsJSON == "" && cfg.GoogleCredentialsFile == "" {
			fail("no credentials: set GOOGLE_CREDENTIALS_JSON or GOOGLE_CREDENTIALS_FILE")
		}
		blob, err := credentials.Load(cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
		if err != nil {
			fail("read credentials: %v", err)
		}
		cred, err := credentials.NewNormalizer(log).Normalize(blob)
		if err != nil {
			fail("normalize credentials: %v", err)
		}
		fmt.Printf("credentials: project=%s issuer=%s key=parsed\n", cred.ProjectID, cred.ClientEmail)

		tokenSource, err := cred.TokenSource(ctx)
		if err != nil {
			fail("token source: %v", err)
		}
		store = adapter.NewFirestoreAttractionRepository(oauth2.NewClient(ctx, tokenSource), adapter.FirestoreBaseURL, cred.ProjectID, cfg.KBCollection, log)
	case config.KBBackendMongo:
		client, err := persistence.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			fail("connect mongodb: %v", err)
		}
		defer client.Disconnect(ctx)
		store = adapter.NewMongoAttractionRepository(persistence.GetDatabase(client, cfg.MongoDB), cfg.KBCollection)
	default:
		fail("unknown KB_BACKEND %q", cfg.KBBackend)
	}

	var doc *entity.Attraction
	start := time.Now()
	err = guard.Run(ctx, cfg.ProbeTimeout, "probe read", func(ctx context.Context) error {
		var err error
		doc, err = store.FindAny(ctx)
		return err
	})
	elapsed := time.Since(start).Round(time.Millisecond)

	switch {
	case errors.Is(err, guard.ErrDeadline):
		fmt.Printf("FAIL  backend did not answer within %s\n", cfg.ProbeTimeout)
		fmt.Printf("      this is the signature of broken key material or a network block,\n")
		fmt.Printf("      not an empty collection. Re-check the private key first.\n")
		os.Exit(1)
	case err != nil:
		fail("probe read: %v", err)
	case doc == nil:
		fmt.Printf("WARN  backend reachable in %s, but the collection is empty\n", elapsed)
		fmt.Printf("      queries will return zero rows for every city.\n")
		return
	}

	fmt.Printf("OK    document retrieved in %s\n", elapsed)
	fmt.Printf("sample: city=%q name=%q\n", doc.City, doc.Name)

	fields, err := store.SampleFields(ctx)
	if err != nil {
		fmt.Printf("field inspection failed: %v\n", err)
		return
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("\nfields:\n")
	for _, name := range names {
		fmt.Printf("  %-28s %s\n", name, fields[name])
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "probe: "+format+"\n", args...)
	os.Exit(1)
}
