package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/kudos/internal/storage"
	"github.com/Decentr-net/kudos/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Postgres  string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	Post      string `long:"post" env:"POST" description:"recount only the post, all posts are recounted when empty"`
	BatchSize uint16 `long:"batch-size" env:"BATCH_SIZE" default:"500" description:"count of post ids fetched at once"`
	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "recount"
	parser.LongDescription = "Recomputes post reaction counters from reaction rows"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	defer db.Close() // nolint:errcheck

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	s := postgres.New(db)
	ctx := context.Background()

	if opts.Post != "" {
		recount(ctx, s, opts.Post)
		return
	}

	var total, fixed int
	for after := ""; ; {
		ids, err := s.ListPostIDs(ctx, after, opts.BatchSize)
		if err != nil {
			logrus.WithError(err).Fatal("failed to list posts")
		}

		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if recount(ctx, s, id) {
				fixed++
			}
		}

		total += len(ids)
		after = ids[len(ids)-1]
	}

	logrus.WithField("total", total).WithField("fixed", fixed).Info("done")
}

// recount returns true if counters drifted.
func recount(ctx context.Context, s storage.Storage, id string) bool {
	r, err := s.RecountPost(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("post", id).Fatal("failed to recount post")
	}

	if r.Before == r.After {
		return false
	}

	logrus.WithFields(logrus.Fields{
		"post":   id,
		"before": r.Before,
		"after":  r.After,
	}).Warn("counters drifted")

	return true
}
