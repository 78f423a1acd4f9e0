package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	logging "github.com/inconshreveable/log15"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cmdcommon "github.com/milselarch/trie-rcv/cmd/trie-rcv/common"
	"github.com/milselarch/trie-rcv/lib/common"
	"github.com/milselarch/trie-rcv/lib/election"
	"github.com/milselarch/trie-rcv/lib/voting"
)

const defaultLogLevel logging.Lvl = logging.LvlInfo

var (
	runCmd *cobra.Command

	flagStrategy string = voting.DowdallScoring.String()
	flagLogLevel string = defaultLogLevel.String()

	strategy voting.Strategy
	logLevel logging.Lvl
)

func init() {
	runCmd = &cobra.Command{
		Use:   "run <ballots file>",
		Short: "Run a ranked-choice election over a JSON file of raw ballots",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			parseRunFlags(c)
			runElection(c, args[0])
		},
	}

	runCmd.Flags().StringVar(&flagStrategy, "strategy", flagStrategy, "elimination strategy, one of {eliminate-all, dowdall-scoring, ranked-pairs, condorcet-ranked-pairs}")
	runCmd.Flags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")

	rootCmd.AddCommand(runCmd)
}

func parseRunFlags(c *cobra.Command) {
	var err error

	if strategy, err = voting.ParseStrategy(flagStrategy); err != nil {
		cmdcommon.PrintFlagsError(c, "--strategy", err)
	}

	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		cmdcommon.PrintFlagsError(c, "--log-level", err)
	}

	var formatter logging.Format
	if isatty.IsTerminal(os.Stdout.Fd()) {
		formatter = logging.TerminalFormat()
	} else {
		formatter = common.JsonFormatEx(false, true)
	}

	election.SetLogging(logLevel, logging.StreamHandler(os.Stdout, formatter))
}

func runElection(c *cobra.Command, path string) {
	raws, err := readRawBallots(path)
	if err != nil {
		cmdcommon.PrintError(c, err)
	}

	ballots, err := voting.NewBallotsFromInts(raws)
	if err != nil {
		cmdcommon.PrintError(c, err)
	}

	conf := election.NewConfiguration()
	conf.Strategy = strategy

	e := election.NewElection(conf)
	e.InsertBallots(ballots)

	if winner, found := e.DetermineWinner(); found {
		fmt.Fprintf(os.Stdout, "winner: %s\n", winner)
	} else {
		fmt.Fprintln(os.Stdout, "no winner")
	}
}

func readRawBallots(path string) (raws [][]int, err error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ballots file, '%s'", path)
	}

	if err = json.Unmarshal(b, &raws); err != nil {
		return nil, errors.Wrapf(err, "failed to parse ballots file, '%s'", path)
	}

	return
}
