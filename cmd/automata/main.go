// Command automata parses, converts and queries finite automata given in the
// transition-table format, and regular expressions.
//
// Usage:
//
//	automata check   (dfa|nfa|regex) <file>
//	automata convert (nfa-to-dfa|dfa-to-nfa|regex-to-nfa|regex-to-dfa) <file>
//	automata minimize <dfa-file>
//	automata test    (dfa|nfa) <file> <token>...
//	automata words   [-n count] <nfa-file>
//
// Converted automata and minimized DFAs are printed as tables on stdout.
// "test" joins its tokens into one input word and prints "accept" or
// "reject"; after "reject" it exits with status 1. Otherwise the exit code is
// 0 on success and non-zero on any error, with the message on stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/coregx/automata/dfa"
	"github.com/coregx/automata/nfa"
	"github.com/coregx/automata/regex"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("automata: ")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "check":
		err = runCheck(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "minimize":
		err = runMinimize(os.Args[2:])
	case "test":
		err = runTest(os.Args[2:])
	case "words":
		err = runWords(os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		log.Printf("unknown command %q", cmd)
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `usage:
  automata check   (dfa|nfa|regex) <file>
  automata convert (nfa-to-dfa|dfa-to-nfa|regex-to-nfa|regex-to-dfa) <file>
  automata minimize <dfa-file>
  automata test    (dfa|nfa) <file> <token>...
  automata words   [-n count] <nfa-file>
`)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return string(data), nil
}

func runCheck(args []string) error {
	if len(args) != 2 {
		return errors.New("check needs a kind (dfa|nfa|regex) and a file")
	}
	text, err := readFile(args[1])
	if err != nil {
		return err
	}
	switch kind := args[0]; kind {
	case "dfa":
		_, err = dfa.FromTable(text)
	case "nfa":
		_, err = nfa.FromTable(text)
	case "regex":
		_, err = regex.Parse(strings.TrimSpace(text))
	default:
		return errors.Errorf("unknown kind %q", kind)
	}
	return errors.Wrap(err, args[1])
}

func runConvert(args []string) error {
	if len(args) != 2 {
		return errors.New("convert needs a direction and a file")
	}
	text, err := readFile(args[1])
	if err != nil {
		return err
	}
	switch direction := args[0]; direction {
	case "nfa-to-dfa":
		n, err := nfa.FromTable(text)
		if err != nil {
			return errors.Wrap(err, args[1])
		}
		fmt.Print(n.ToDFA().ToTable())
	case "dfa-to-nfa":
		d, err := dfa.FromTable(text)
		if err != nil {
			return errors.Wrap(err, args[1])
		}
		fmt.Print(nfa.FromDFA(d).ToTable())
	case "regex-to-nfa":
		r, err := regex.Parse(strings.TrimSpace(text))
		if err != nil {
			return errors.Wrap(err, args[1])
		}
		fmt.Print(r.ToNFA().ToTable())
	case "regex-to-dfa":
		r, err := regex.Parse(strings.TrimSpace(text))
		if err != nil {
			return errors.Wrap(err, args[1])
		}
		fmt.Print(r.ToDFA().ToTable())
	default:
		return errors.Errorf("unknown direction %q", direction)
	}
	return nil
}

func runMinimize(args []string) error {
	if len(args) != 1 {
		return errors.New("minimize needs a DFA file")
	}
	text, err := readFile(args[0])
	if err != nil {
		return err
	}
	d, err := dfa.FromTable(text)
	if err != nil {
		return errors.Wrap(err, args[0])
	}
	d.Minimize()
	fmt.Print(d.ToTable())
	return nil
}

func runTest(args []string) error {
	if len(args) < 2 {
		return errors.New("test needs a kind (dfa|nfa), a file and input tokens")
	}
	text, err := readFile(args[1])
	if err != nil {
		return err
	}
	input := args[2:]

	var accepted bool
	switch kind := args[0]; kind {
	case "dfa":
		d, err := dfa.FromTable(text)
		if err != nil {
			return errors.Wrap(err, args[1])
		}
		accepted = d.Accepts(input)
	case "nfa":
		n, err := nfa.FromTable(text)
		if err != nil {
			return errors.Wrap(err, args[1])
		}
		accepted = n.Accepts(input)
	default:
		return errors.Errorf("unknown kind %q", kind)
	}
	if accepted {
		fmt.Println("accept")
	} else {
		fmt.Println("reject")
		os.Exit(1)
	}
	return nil
}

func runWords(args []string) error {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	count := fs.Int("n", 20, "number of words to print")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("words needs an NFA file")
	}
	text, err := readFile(fs.Arg(0))
	if err != nil {
		return err
	}
	n, err := nfa.FromTable(text)
	if err != nil {
		return errors.Wrap(err, fs.Arg(0))
	}

	iter := n.Words()
	for i := 0; i < *count; i++ {
		word, ok := iter.Next()
		if !ok {
			break
		}
		if len(word) == 0 {
			fmt.Println("ε")
			continue
		}
		fmt.Println(strings.Join(word, " "))
	}
	return nil
}
