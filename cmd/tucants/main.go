// Command tucants connects to a Tucants referee over TCP and plays by
// delegating to the iterative-deepening alpha-beta expectiminimax
// search engine. Flag parsing and logging setup follow
// zurichess/main.go.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/croatoan/tucants/internal/agentloop"
	"github.com/croatoan/tucants/internal/search"
)

const (
	defaultIP   = "127.0.0.1"
	defaultPort = 6001
	defaultMs   = 1000
	defaultName = "croatoan"
)

func main() {
	ip := flag.String("i", defaultIP, "referee host")
	port := flag.Int("p", defaultPort, "referee TCP port")
	budgetMs := flag.Int("t", defaultMs, "per-move time budget in milliseconds")
	name := flag.String("a", defaultName, "agent identifier (<=16 bytes)")
	verbose := flag.Bool("v", false, "log each decided move's color and capture count")
	help := flag.Bool("h", false, "print usage and exit")
	flag.Usage = usage
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if *help {
		usage()
		os.Exit(0)
	}

	if errs := validateFlags(*name); errs.ErrorOrNil() != nil {
		fmt.Fprintln(os.Stderr, errs)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "tucants: ", log.LstdFlags)

	addr := fmt.Sprintf("%s:%d", *ip, *port)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		logger.Fatalf("connect to %s: %v", addr, err)
	}
	defer conn.Close()

	engine := search.NewEngine(search.TucantsGame{})
	agent := agentloop.NewAgent(*name, *budgetMs, engine, logger)
	agent.Verbose = *verbose

	if err := agent.Serve(conn); err != nil {
		logger.Fatal(err)
	}
}

// validateFlags checks the CLI-level constraints on the agent name
// (byte budget) and reports every violation together, in the style of
// the hashicorp/go-multierror usage in Elvenson-alphabeth/agent.go.
func validateFlags(name string) *multierror.Error {
	var errs *multierror.Error
	if len(name) > 16 {
		errs = multierror.Append(errs, fmt.Errorf("-a: agent name %q exceeds 16 bytes", name))
	}
	return errs
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tucants [-i ip] [-p port] [-t ms] [-a name] [-v] [-h]")
	flag.PrintDefaults()
}
