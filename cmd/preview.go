package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/assessment"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/selector"
	"github.com/abhisek/triage/internal/store"
)

var previewCmd = &cobra.Command{
	Use:   "preview [complaint...]",
	Short: "Answer the questionnaire line by line on stdin",
	Long: `Run the symptom checker without the full-screen UI.

Each question is printed with lettered options. Answer with the option
letter or its number; an empty line skips the question. Progress is
shown after every answer and a summary at the end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd, true)
		if err != nil {
			return err
		}
		defer env.Close()

		var opts []assessment.Option
		if env.cfg.CarryAnswers {
			opts = append(opts, assessment.WithAnswerCarryOver())
		}

		p := &previewer{
			in:     bufio.NewScanner(cmd.InOrStdin()),
			out:    cmd.OutOrStdout(),
			sess:   assessment.NewSession(selector.New(catalog.Default()), opts...),
			repo:   env.store.EventRepo(),
			logger: env.logger,
		}
		return p.run(cmd.Context(), strings.Join(args, " "))
	},
}

var errInputClosed = errors.New("input closed")

// previewer drives a Session from line-based input.
type previewer struct {
	in     *bufio.Scanner
	out    io.Writer
	sess   *assessment.Session
	repo   store.EventRepo // may be nil
	logger zerolog.Logger
}

func (p *previewer) run(ctx context.Context, complaint string) error {
	st, err := p.start(ctx, complaint)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Focus: %s\n\n", catalog.DomainDisplayName(st.Domain))

questions:
	for i, q := range st.Questions {
		chosen, _ := st.Answer(q.ID)
		printQuestion(p.out, i+1, len(st.Questions), q, chosen)

		for {
			fmt.Fprint(p.out, "Your answer: ")
			line, ok := p.readLine()
			if !ok {
				fmt.Fprintln(p.out, "\n(input closed)")
				break questions
			}
			if line == "" {
				fmt.Fprintln(p.out, "(skipped)")
				fmt.Fprintln(p.out)
				break
			}

			key := resolveOptionKey(q, line)
			st, err = p.sess.Answer(q.ID, key)
			if err != nil {
				fmt.Fprintf(p.out, "✗ %v\n", err)
				continue
			}
			p.logger.Debug().Str("question_id", q.ID).Str("option", key).Int("progress", st.Progress).Msg("answer recorded")
			p.record(ctx, store.AssessmentEventData{
				SessionID:  st.SessionID,
				Action:     store.ActionAnswer,
				Domain:     string(st.Domain),
				QuestionID: q.ID,
				OptionKey:  key,
				Progress:   st.Progress,
			})
			fmt.Fprintf(p.out, "Progress: %d%%\n\n", st.Progress)
			break
		}
	}

	st, err = p.sess.Submit()
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	p.logger.Info().Str("session_id", st.SessionID).Int("answered", st.AnsweredCount()).Msg("assessment submitted")
	p.record(ctx, store.AssessmentEventData{
		SessionID: st.SessionID,
		Action:    store.ActionSubmit,
		Domain:    string(st.Domain),
		Progress:  st.Progress,
	})

	printSummary(p.out, assessment.BuildSummary(st))
	return nil
}

// start prompts until a non-blank complaint is given.
func (p *previewer) start(ctx context.Context, complaint string) (assessment.State, error) {
	for {
		if strings.TrimSpace(complaint) == "" {
			fmt.Fprint(p.out, "What seems to be the problem? ")
			line, ok := p.readLine()
			if !ok {
				return assessment.State{}, errInputClosed
			}
			complaint = line
		}

		st, err := p.sess.Start(complaint)
		var verr *assessment.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(p.out, "Please describe your main symptom.")
			complaint = ""
			continue
		}
		if err != nil {
			return assessment.State{}, err
		}

		p.logger.Info().Str("session_id", st.SessionID).Str("domain", string(st.Domain)).Msg("assessment started")
		p.record(ctx, store.AssessmentEventData{
			SessionID:      st.SessionID,
			Action:         store.ActionStart,
			ChiefComplaint: st.ChiefComplaint,
			Domain:         string(st.Domain),
		})
		return st, nil
	}
}

func (p *previewer) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *previewer) record(ctx context.Context, data store.AssessmentEventData) {
	if p.repo == nil {
		return
	}
	if err := p.repo.AppendAssessmentEvent(ctx, data); err != nil {
		p.logger.Warn().Err(err).Str("action", string(data.Action)).Msg("record event failed")
	}
}

// resolveOptionKey accepts an option key in any case or a 1-based option
// number. Anything else is passed through for the session to reject.
func resolveOptionKey(q catalog.Question, input string) string {
	key := strings.ToLower(input)
	if q.HasOption(key) {
		return key
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1].Key
	}
	return key
}

func printSummary(w io.Writer, s *assessment.Summary) {
	fmt.Fprintln(w, "── Assessment Summary ──")
	fmt.Fprintf(w, "Complaint: %s\n", s.ChiefComplaint)
	fmt.Fprintf(w, "Focus:     %s\n", catalog.DomainDisplayName(s.Domain))
	fmt.Fprintf(w, "Answered:  %d/%d (%d%%)   Duration: %d:%02d\n\n",
		s.Answered, s.Total, s.Progress,
		int(s.Duration.Minutes()), int(s.Duration.Seconds())%60)

	for i, l := range s.Lines {
		answer := "unanswered"
		if l.Answered {
			answer = fmt.Sprintf("%s) %s", strings.ToUpper(l.OptionKey), l.OptionText)
		}
		fmt.Fprintf(w, "%2d. %-45s %s\n", i+1, l.Question, answer)
	}

	fmt.Fprintln(w, "\nThis summary is not a diagnosis. Share it with a clinician.")
}
