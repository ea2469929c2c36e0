// Command kanren is a small demo CLI over pkg/kanren: it runs a handful
// of built-in relational queries and prints their reified answers.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/relateware/gokanren/pkg/kanren"
	"github.com/relateware/gokanren/pkg/kanren/relations"
)

var log = hclog.New(&hclog.LoggerOptions{
	Name:  "kanren",
	Level: hclog.Info,
})

var demos = map[string]func(){
	"unify":   demoUnify,
	"disj":    demoDisj,
	"appendo": demoAppendo,
	"reverso": demoReverso,
	"membero": demoMembero,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		listDemos()
	case "run":
		if len(os.Args) < 3 {
			log.Error("run requires a demo name", "usage", "kanren run <demo>")
			os.Exit(1)
		}
		demo, ok := demos[os.Args[2]]
		if !ok {
			log.Error("no such demo", "name", os.Args[2])
			listDemos()
			os.Exit(1)
		}
		demo()
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: kanren list | kanren run <demo>")
}

func listDemos() {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(" ", name)
	}
}

func demoUnify() {
	color.Cyan("== unify ==")
	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return kanren.Eq(q, kanren.A("hello"))
	})
	log.Info("ran query", "goal", "q == \"hello\"", "answers", len(results))
	fmt.Printf("q = %v\n", results)
}

func demoDisj() {
	color.Cyan("== disj ==")
	results := kanren.Run(kanren.Unbounded, func(q *kanren.Var) kanren.Goal {
		return kanren.Disj(
			kanren.Eq(q, kanren.A(1)),
			kanren.Eq(q, kanren.A(2)),
			kanren.Eq(q, kanren.A(3)),
		)
	})
	log.Info("ran query", "goal", "q in {1, 2, 3}", "answers", len(results))
	fmt.Printf("q = %v\n", results)
}

func demoAppendo() {
	color.Cyan("== appendo ==")
	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return relations.Appendo.Goal(kanren.L(1, 2), kanren.L(3, 4), q)
	})
	log.Info("ran query", "goal", "append([1 2], [3 4])", "answers", len(results))
	fmt.Printf("q = %v\n", results)
}

func demoReverso() {
	color.Cyan("== reverso ==")
	results := kanren.Run(1, func(q *kanren.Var) kanren.Goal {
		return relations.Reverso.Goal(kanren.L(1, 2, 3), q)
	})
	log.Info("ran query", "goal", "reverse([1 2 3])", "answers", len(results))
	fmt.Printf("q = %v\n", results)
}

func demoMembero() {
	color.Cyan("== membero ==")
	results := kanren.Run(kanren.Unbounded, func(q *kanren.Var) kanren.Goal {
		return relations.Membero.Goal(q, kanren.L(1, 2, 3))
	})
	log.Info("ran query", "goal", "q member of [1 2 3]", "answers", len(results))
	fmt.Printf("q = %v\n", results)
}
