// Command treapstress runs random operations on the treaps of package Trees
// and checks every answer against a naive model.
//
//	treapstress [--config run.toml] [--seed 1] [--size 1000] [--ops 100000] [--euler]
//
// It exits with status 1 when an answer differs from the model or a treap is
// found corrupt, and 2 on bad usage.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logrus.New()
	c, err := newFlags("treapstress").parse(args)
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return 2
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithError(err).Error("invalid log level")
		return 2
	}
	log.SetLevel(lvl)
	entry := log.WithFields(logrus.Fields{"seed": c.Seed, "size": c.Size, "ops": c.Ops})

	var r report
	if c.Euler {
		entry = entry.WithField("structure", "euler")
		r = stressEuler(c, entry)
	} else {
		entry = entry.WithField("structure", "implicit")
		r = stressTreap(c, entry)
	}
	entry = entry.WithFields(logrus.Fields{"checks": r.checks, "mismatches": r.mismatches})
	if r.mismatches > 0 {
		entry.Error("stress run failed")
		return 1
	}
	entry.Info("stress run passed")
	return 0
}
