package storage

import (
	"context"
	"os"
)

// Source is one remote document of case records. Fetch returns the raw JSON
// body; interpreting it is the repository's job.
type Source interface {
	// Name identifies the source in logs ("familia", "siniestros").
	Name() string

	// Fetch retrieves the document body.
	Fetch(ctx context.Context) ([]byte, error)
}

// record families with their env prefixes, in merge order.
var families = []struct {
	name   string
	prefix string
}{
	{name: "familia", prefix: "FAMILIA"},
	{name: "siniestros", prefix: "SINIESTROS"},
}

// SourcesFromEnv builds the configured sources from environment variables.
// Each family is optional and resolved in priority order: HTTP URL, S3
// object, local file. Zero configured sources is a valid (empty) result;
// the repository decides whether that is an operator error.
func SourcesFromEnv() ([]Source, error) {
	sources := make([]Source, 0, len(families))

	for _, family := range families {
		prefix := family.prefix

		if url := os.Getenv(prefix + "_URL"); url != "" {
			sources = append(sources, NewHTTPSource(family.name, url))
			continue
		}

		bucket := os.Getenv(prefix + "_S3_BUCKET")
		key := os.Getenv(prefix + "_S3_KEY")
		if bucket != "" && key != "" {
			src, err := NewS3Source(family.name, S3Config{
				Bucket:       bucket,
				Key:          key,
				Region:       os.Getenv("AWS_REGION"),
				AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
				AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			})
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
			continue
		}

		if path := os.Getenv(prefix + "_FILE"); path != "" {
			sources = append(sources, NewLocalSource(family.name, path))
		}
	}

	return sources, nil
}
