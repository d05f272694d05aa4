// Package parser implements the Simple Struct field state machine.
package parser

import (
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-sstruct/internal/lexer"
	"github.com/KimNorgaard/go-sstruct/internal/token"
)

// State is the position of the parser relative to field separators.
type State int

const (
	// BeforeSeparator means no field is open.
	BeforeSeparator State = iota
	// AfterSeparator means a field is open and lines are appended to it.
	AfterSeparator
)

func (s State) String() string {
	switch s {
	case BeforeSeparator:
		return "Before separator"
	case AfterSeparator:
		return "After separator"
	default:
		return "Unknown"
	}
}

// Field is a closed field as handed to the emit callback. Values and
// Comments are the raw collected lines, untrimmed.
type Field struct {
	Name     string
	Values   []string
	Comments []string
}

// Parser holds the state of one parse. A Parser must not be shared between
// concurrent parses.
type Parser struct {
	log  *zap.Logger
	emit func(Field)

	state   State
	sep     *lexer.Separator
	current *Field
	pending []string
}

// New creates a new parser that calls emit for every field it closes, in
// closing order. A nil logger disables logging.
func New(emit func(Field), log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		log:   log,
		emit:  emit,
		state: BeforeSeparator,
	}
}

// State returns the current state.
func (p *Parser) State() State {
	return p.state
}

// Feed processes a single line.
func (p *Parser) Feed(lno int, text string) {
	l := p.log.With(zap.Stringer("state", p.state), zap.Int("lineNumber", lno))
	l.Debug("line", zap.String("line", text))

	switch p.state {
	case BeforeSeparator:
		p.feedBefore(l, lexer.Classify(lno, text))
	case AfterSeparator:
		p.feedAfter(l, p.sep.Classify(lno, text))
	default:
		l.Error("unknown state")
	}
}

func (p *Parser) feedBefore(l *zap.Logger, line token.Line) {
	switch line.Type {
	case token.COMMENT:
		l.Debug("adding meta", zap.String("meta", line.Comment))
		p.pending = append(p.pending, line.Comment)
	case token.SEPARATOR:
		l.Debug("open field",
			zap.String("separator", line.Separator),
			zap.String("field", line.Name))
		p.sep = lexer.NewSeparator(line.Separator)
		p.open(line.Name, p.pending)
		p.pending = nil
		p.state = AfterSeparator
	case token.EMPTY:
		l.Debug("skipping empty line")
	default:
		l.Info("Unexpected line", zap.String("line", line.Text))
	}
}

func (p *Parser) feedAfter(l *zap.Logger, line token.Line) {
	switch line.Type {
	case token.END:
		l.Debug("close field", zap.String("closingField", p.current.Name))
		p.flush()
		p.pending = nil
		p.state = BeforeSeparator
	case token.NEXT:
		l.Debug("close field and open next",
			zap.String("closingField", p.current.Name),
			zap.String("field", line.Name))
		p.flush()
		p.open(line.Name, nil)
	default:
		p.current.Values = append(p.current.Values, line.Text)
	}
}

// Close flushes the open field, if any, as if an end line had been read.
// Comments that were not followed by a separator are dropped.
func (p *Parser) Close() {
	p.log.Debug("end of input", zap.Stringer("state", p.state))
	if p.state == AfterSeparator {
		p.flush()
	}
	p.pending = nil
	p.sep = nil
	p.state = BeforeSeparator
}

func (p *Parser) open(name string, comments []string) {
	p.current = &Field{
		Name:     name,
		Values:   []string{},
		Comments: append([]string{}, comments...),
	}
}

func (p *Parser) flush() {
	f := *p.current
	p.current = nil
	if p.emit != nil {
		p.emit(f)
	}
}
