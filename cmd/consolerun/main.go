// Command consolerun runs one screening session interactively in a
// terminal: prompts print to stdout and typed lines are submitted as
// transcripts. Lines starting with "/" are commands.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"cognitive-screening-service/internal/app"
	"cognitive-screening-service/internal/config"
	"cognitive-screening-service/internal/events"
	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/service/screening"
	"cognitive-screening-service/internal/speech/console"
	"cognitive-screening-service/internal/speech/push"
)

func main() {
	localeFlag := flag.String("locale", "", "session locale (zh-HK or zh-CN)")
	toneFlag := flag.String("tone", "", "prompt tone (friendly or clinical)")
	flag.Parse()

	cfg := config.Load()
	application := app.New(cfg)
	_ = application.Start()
	defer application.Shutdown()

	if *localeFlag == "" {
		*localeFlag = cfg.Screening.DefaultLocale
	}
	code, err := locale.ParseCode(*localeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *toneFlag == "" {
		*toneFlag = cfg.Screening.DefaultTone
	}
	tone, err := locale.ParseTone(*toneFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pack, err := locale.Load(code, tone)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	publisher := events.New(&events.Config{
		Enabled:      cfg.Kafka.Enabled,
		Brokers:      cfg.Kafka.Brokers,
		TopicTurns:   cfg.Kafka.TopicTurns,
		TopicResults: cfg.Kafka.TopicResults,
		Principal:    cfg.Kafka.Principal,
	})
	defer publisher.Close()

	in := push.New()
	session := screening.NewSession(screening.SessionConfig{
		ID:        screening.NewGenerator().Next(),
		Pack:      pack,
		Output:    console.NewOutput(os.Stdout),
		Input:     in,
		Publisher: publisher,
		AckDelay:  cfg.Screening.AckDelay,
	})

	ctx := context.Background()
	if err := session.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(`(type answers; commands: /advance /skip /reset /state /quit)`)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit":
			return
		case "/advance":
			report(session.Advance(ctx))
		case "/skip":
			report(session.Skip(ctx))
		case "/reset":
			if err := session.Reset(ctx); err != nil {
				report(err)
				continue
			}
			report(session.Start(ctx))
		case "/state":
			snap := session.Snapshot()
			fmt.Printf("phase=%s listening=%v\n", snap.Phase, snap.Listening)
			if snap.Turn != nil {
				fmt.Printf("prompt %d/%d: %s\n", snap.Turn.PromptIndex+1, snap.Turn.PromptCount, snap.Turn.Prompt)
			}
			if snap.Interpretation != nil {
				fmt.Printf("%s (%d%%)\n%s\n", snap.Interpretation.Label, snap.Interpretation.Percentage, snap.Interpretation.Recommendation)
			}
		default:
			if !in.Submit(line) {
				fmt.Println("(no open listening window, input dropped)")
			}
		}

		if session.Phase() == screening.PhaseResult {
			printResult(session)
		}
	}
}

func report(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func printResult(session *screening.Session) {
	res, ok := session.FinalResult()
	if !ok {
		return
	}
	interp, _ := session.Interpretation()
	switch res.Instrument {
	case screening.InstrumentMiniCog:
		fmt.Printf("\n%s: %d/5 (recall %d, clock %d)\n", interp.Label, res.Total, res.RecallScore, res.ClockScore)
	default:
		fmt.Printf("\n%s: %d/%d (%d%%)\n", interp.Label, res.Score, res.MaxScore, interp.Percentage)
	}
	fmt.Println(interp.Recommendation)
	fmt.Println(interp.Disclaimer)
	fmt.Println("(/reset starts a fresh run, /quit exits)")
}
