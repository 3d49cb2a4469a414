package pdf

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/afero"

	"github.com/aqualab/meterconsole/internal/cmd/base"
)

// openFile opens a downloaded file with the desktop's default handler.
var openFile = browser.OpenFile

type DownloadCommand struct {
	*base.Command

	flagOut  string
	flagCSV  bool
	flagOpen bool
}

func (c *DownloadCommand) Synopsis() string {
	return "Download the PDF or CSV of a record"
}

func (c *DownloadCommand) Help() string {
	return `Usage: meterconsole pdf download [options] <id>

  Save the generated PDF, or its CSV with -csv, to a file. With -open the
  file is opened in the default viewer afterwards.` +
		c.Flags().Help()
}

func (c *DownloadCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("pdf download")
	f.StringVar(&c.flagOut, "out", "", "Output file. Defaults to pdf-record-<id>.pdf or .csv.")
	f.BoolVar(&c.flagCSV, "csv", false, "Download the CSV instead of the PDF.")
	f.BoolVar(&c.flagOpen, "open", false, "Open the file once downloaded.")
	return f
}

func (c *DownloadCommand) Run(args []string) int {
	f := c.Flags()
	d, err := c.Init(f, args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	id, err := base.ParseID(f.Args())
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ext := "pdf"
	if c.flagCSV {
		ext = "csv"
	}
	out := c.flagOut
	if out == "" {
		out = fmt.Sprintf("pdf-record-%d.%s", id, ext)
	}

	ctx, cancel := c.Context()
	defer cancel()

	download := d.PdfDownload
	if c.flagCSV {
		download = d.CsvDownload
	}
	res := download(ctx, id)
	if !res.OK() {
		return c.Error("downloading "+ext, res.Err)
	}

	if err := afero.WriteFile(c.Fs, out, res.Data, 0o644); err != nil {
		return c.Error("writing file", err)
	}
	c.UI.Info(fmt.Sprintf("Saved %d bytes to %s", len(res.Data), out))

	if c.flagOpen {
		if err := openFile(out); err != nil {
			return c.Error("opening file", err)
		}
	}
	return 0
}
