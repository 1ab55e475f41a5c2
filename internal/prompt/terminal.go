package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/relatives"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/validation"
)

// Terminal asks questions on an output stream and reads one-line answers.
type Terminal struct {
	mu         sync.Mutex
	in         *bufio.Reader
	out        io.Writer
	maxAliases int
	question   *color.Color
	eof        bool
}

// NewTerminal builds a Terminal. Questions are colored only when out is a
// terminal. maxAliases limits the aliases shown next to a record.
func NewTerminal(in io.Reader, out io.Writer, maxAliases int) *Terminal {
	question := color.New(color.FgCyan, color.Bold)
	if IsTerminal(out) {
		question.EnableColor()
	} else {
		question.DisableColor()
	}
	return &Terminal{
		in:         bufio.NewReader(in),
		out:        out,
		maxAliases: maxAliases,
		question:   question,
	}
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ConfirmRecord asks whether to keep an ambiguous record.
func (t *Terminal) ConfirmRecord(ctx context.Context, p validation.RecordPrompt) bool {
	return yes(t.ask(ctx, "\t"+RecordQuestion(p, t.maxAliases)+"\t"))
}

// ConfirmRelative asks whether to add a relative to the roster.
func (t *Terminal) ConfirmRelative(ctx context.Context, p relatives.RelativePrompt) bool {
	width := len(strconv.Itoa(p.Total))
	msg := fmt.Sprintf("%*d) Would you like to add %s? [y|n] ", width, p.Index, p.Stub.FullName())
	return yes(t.ask(ctx, "\t"+msg+"\t"))
}

// PromptField asks for a value the broker did not provide.
func (t *Terminal) PromptField(ctx context.Context, field relatives.Field, _ identity.RelativeStub) string {
	var msg string
	if field == relatives.FieldCheckRelatives {
		msg = "Check relatives? (optional) [y|n] "
	} else {
		msg = fmt.Sprintf("Please enter %s: (optional) ", field.Label())
	}
	return t.ask(ctx, "\t\t"+msg)
}

// RecordQuestion renders the question shown for an ambiguous record, for
// example "3) Do you want to keep John Smith of Austin, TX? (aka J Smith) [y|n]".
func RecordQuestion(p validation.RecordPrompt, maxAliases int) string {
	width := len(strconv.Itoa(p.Total))
	return fmt.Sprintf("%*d) Do you want to keep %s of %s?%s [y|n]",
		width, p.Index, p.Record.Name, RecordLocation(p.Record), Aliases(p.Record, maxAliases))
}

// RecordLocation renders the record's current address, naming an unknown
// city the way brokers leave it blank.
func RecordLocation(record identity.CandidateRecord) string {
	addr := record.CurrentAddress()
	locality := strings.TrimSpace(addr.Locality)
	if locality == "" {
		locality = "Unknown City"
	}
	return locality + ", " + strings.TrimSpace(addr.Region)
}

// Aliases renders up to max additional names as " (aka A; B)", or "" when
// there are none to show.
func Aliases(record identity.CandidateRecord, max int) string {
	names := record.AdditionalNames
	if max >= 0 && len(names) > max {
		names = names[:max]
	}
	if len(names) == 0 {
		return ""
	}
	return " (aka " + strings.Join(names, "; ") + ")"
}

func (t *Terminal) ask(ctx context.Context, msg string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ctx.Err() != nil || t.eof {
		return ""
	}
	_, _ = t.question.Fprint(t.out, msg)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			t.eof = true
			_, _ = fmt.Fprintln(t.out)
		}
		if line == "" {
			return ""
		}
	}
	return strings.TrimSpace(line)
}

func yes(answer string) bool {
	return relatives.ParseYes(answer)
}
