package main

import (
	"context"
	"log"
	"os"

	"github.com/killua-y/kanbas-fullstack-app/core"
	"github.com/killua-y/kanbas-fullstack-app/storage/database/mongo"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db, err := mongorepos.Open(core.Conf)
	errAndDie(err)
	ctx := context.Background()
	errAndDie(mongorepos.EnsureIndexes(ctx, db))
	defer func() { _ = db.Client().Disconnect(ctx) }()

	// start CLI
	cli := commandLine{
		db:      db,
		usrRepo: mongorepos.NewUserRepository(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
