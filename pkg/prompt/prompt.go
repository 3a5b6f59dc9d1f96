// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prompt asks the user to confirm individual changes.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ❓ Confirmer decides whether a proposed change goes ahead. Implementations
// may block until the user answers.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, message string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, message string) bool {
	return f(ctx, message)
}

// ✅ Always approves every change. It is used when prompting is disabled.
type Always struct{}

// Confirm implements Confirmer.
func (Always) Confirm(context.Context, string) bool {
	return true
}

// ⌨️ LineConfirmer writes the question to out and reads one line from in.
// Only an answer of "y" confirms.
type LineConfirmer struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// 🏭 NewLineConfirmer creates a LineConfirmer
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm implements Confirmer.
func (c *LineConfirmer) Confirm(ctx context.Context, message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "%s ... Confirm [y/N]: \n", message)

	answer, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("reading confirmation")
		return false
	}
	return strings.TrimSpace(answer) == "y"
}

// 🖥️ TerminalConfirmer shows an interactive y/N question on a terminal.
type TerminalConfirmer struct {
	printer *pterm.InteractiveConfirmPrinter
}

// 🏭 NewTerminalConfirmer creates a TerminalConfirmer defaulting to "no"
func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{
		printer: pterm.DefaultInteractiveConfirm.WithDefaultValue(false),
	}
}

// Confirm implements Confirmer.
func (c *TerminalConfirmer) Confirm(ctx context.Context, message string) bool {
	ok, err := c.printer.Show(message)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("showing confirmation")
		return false
	}
	return ok
}

// 🎯 Default picks a Confirmer. With prompting disabled every change is
// approved. Otherwise a terminal on in gets the interactive question and
// anything else is read line by line.
func Default(enabled bool, in *os.File, out io.Writer) Confirmer {
	if !enabled {
		return Always{}
	}
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTerminalConfirmer()
	}
	return NewLineConfirmer(in, out)
}
