package goldspiral

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/goldspiral/utils"
	"golang.org/x/term"
)

// Ops holds the destination related options of the command line tool.
type Ops struct {
	Dst, PipeName string
}

// Execute generates the document and writes it to the destination defined by op.
// The document is generated completely in memory first, which means that
// on error the destination is left untouched.
func (p *Processor) Execute(op *Ops) error {
	isTerm := term.IsTerminal(int(os.Stderr.Fd()))

	if p.Spinner == nil {
		defaultMsg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ GOLDSPIRAL", utils.StatusMessage),
			utils.DecorateText("⇢ placing the shapes along the spiral...", utils.DefaultMessage),
		)
		p.Spinner = utils.NewSpinner(os.Stderr, defaultMsg, time.Millisecond*80, isTerm)
	}

	if p.Debug {
		p.printParams(os.Stderr)
	}

	now := time.Now()
	if isTerm {
		p.Spinner.Start()
	}

	doc, preview, err := p.render(p.Preview != "")
	if isTerm {
		if err != nil {
			p.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ GOLDSPIRAL", utils.StatusMessage),
				utils.DecorateText("generating the spiral failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage),
			)
		} else {
			p.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ GOLDSPIRAL", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the spiral has been generated successfully ✔", utils.SuccessMessage),
			)
		}
		p.Spinner.Stop()
	}
	if err != nil {
		return err
	}

	if preview != nil {
		if err := preview.Save(p.Preview); err != nil {
			return err
		}
		op.printOpStatus("preview", p.Preview)
	}

	if err := op.write(doc); err != nil {
		return err
	}
	op.printOpStatus("document", op.Dst)

	if isTerm {
		fmt.Fprintf(os.Stderr, "Execution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
		)
	}
	return nil
}

// write writes the document into a regular file or to the standard output
// in case the destination is the pipe name.
func (op *Ops) write(doc string) error {
	var dst io.Writer

	if op.Dst == "" || op.Dst == op.PipeName {
		dst = os.Stdout
	} else {
		f, err := os.Create(op.Dst)
		if err != nil {
			return fmt.Errorf("unable to create the destination file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}()
		dst = f
	}

	if _, err := io.WriteString(dst, doc); err != nil {
		return fmt.Errorf("unable to write the document: %w", err)
	}
	return nil
}

// printOpStatus displays the name of the generated file.
func (op *Ops) printOpStatus(kind, fname string) {
	if fname == "" || fname == op.PipeName {
		return
	}
	fmt.Fprintf(os.Stderr, "The %s has been saved as: %s\n",
		kind, utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
	)
}

// printParams lists the effective parameters, used in debug mode.
func (p *Processor) printParams(w io.Writer) {
	params := []struct {
		name  string
		value any
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"iterations", p.Iterations},
		{"angle", p.Angle},
		{"distance", p.Distance},
		{"size", p.Size},
		{"shape", p.Shape},
		{"title", p.Title},
		{"justsvg", p.JustSVG},
		{"preview", p.Preview},
	}
	for _, prm := range params {
		fmt.Fprintf(w, "%s %v\n",
			utils.DecorateText(fmt.Sprintf("%-10s", prm.name), utils.DebugMessage),
			prm.value,
		)
	}
}
