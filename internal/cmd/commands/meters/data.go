package meters

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/pkg/dashboard"
	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
)

type DataCommand struct {
	*base.Command
}

func (c *DataCommand) Synopsis() string {
	return "Browse meter readings and serial data"
}

func (c *DataCommand) Help() string {
	return `Usage: meterconsole data <subcommand> [options]

  This command groups subcommands for reading what meters reported.`
}

func (c *DataCommand) Run(args []string) int {
	return cli.RunResultHelp
}

// pageOf adapts a typed page read for rendering.
func pageOf[T any](res query.Result[models.Page[T]]) (any, error) {
	if !res.OK() {
		return nil, res.Err
	}
	return res.Data, nil
}

// MeterReader reads one kind of per-meter reading.
type MeterReader func(ctx context.Context, d *dashboard.Dashboard, q models.MeterQuery) (any, error)

// MeterReaders maps subcommand names to the reading they list.
var MeterReaders = map[string]MeterReader{
	"ph": func(ctx context.Context, d *dashboard.Dashboard, q models.MeterQuery) (any, error) {
		return pageOf(d.Ph(ctx, q))
	},
	"orp": func(ctx context.Context, d *dashboard.Dashboard, q models.MeterQuery) (any, error) {
		return pageOf(d.Orp(ctx, q))
	},
	"mv": func(ctx context.Context, d *dashboard.Dashboard, q models.MeterQuery) (any, error) {
		return pageOf(d.Mv(ctx, q))
	},
	"phcal": func(ctx context.Context, d *dashboard.Dashboard, q models.MeterQuery) (any, error) {
		return pageOf(d.PhCalibration(ctx, q))
	},
	"orpcal": func(ctx context.Context, d *dashboard.Dashboard, q models.MeterQuery) (any, error) {
		return pageOf(d.OrpCalibration(ctx, q))
	},
	"tempcal": func(ctx context.Context, d *dashboard.Dashboard, q models.MeterQuery) (any, error) {
		return pageOf(d.TemperatureCalibration(ctx, q))
	},
}

type DataLatestCommand struct {
	*base.Command

	page models.PageRequest
}

func (c *DataLatestCommand) Synopsis() string {
	return "List the most recent raw serial data"
}

func (c *DataLatestCommand) Help() string {
	return `Usage: meterconsole data latest [options]` + c.Flags().Help()
}

func (c *DataLatestCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("data latest")
	f.PageVars(&c.page)
	return f
}

func (c *DataLatestCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	page, err := pageOf(d.LatestSerialData(ctx, c.page))
	if err != nil {
		return c.Error("reading serial data", err)
	}
	if err := c.RenderPage(page); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

// DataMeterCommand lists one kind of reading for a meter.
type DataMeterCommand struct {
	*base.Command

	// Name is the subcommand name and the MeterReaders key.
	Name string

	query models.MeterQuery
}

func (c *DataMeterCommand) Synopsis() string {
	return fmt.Sprintf("List %s readings of a meter", strings.ToUpper(c.Name))
}

func (c *DataMeterCommand) Help() string {
	return fmt.Sprintf(`Usage: meterconsole data %s -meter=<number> [options]`, c.Name) +
		c.Flags().Help()
}

func (c *DataMeterCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("data " + c.Name)
	f.StringVar(&c.query.MeterNumber, "meter", "", "(Required) Meter number.")
	f.PageVars(&c.query.PageRequest)
	return f
}

func (c *DataMeterCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.query.MeterNumber == "" {
		c.UI.Error("meter flag is required")
		return 1
	}
	read, ok := MeterReaders[c.Name]
	if !ok {
		c.UI.Error(fmt.Sprintf("unknown reading kind %q", c.Name))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	page, err := read(ctx, d, c.query)
	if err != nil {
		return c.Error("reading "+c.Name+" data", err)
	}
	if err := c.RenderPage(page); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type DataFilterCommand struct {
	*base.Command

	query models.FilterQuery
}

func (c *DataFilterCommand) Synopsis() string {
	return "List readings by meter, data type and time range"
}

func (c *DataFilterCommand) Help() string {
	return `Usage: meterconsole data filter [options]

  List readings matching every given criterion. Times accept most common
  layouts, e.g. "2024-03-01 08:00" or "March 1, 2024".` +
		c.Flags().Help()
}

func (c *DataFilterCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("data filter")
	f.StringVar(&c.query.MeterNumber, "meter", "", "Meter number.")
	f.StringVar(&c.query.DataType, "type", "", "Data type, e.g. PH or ORPCAL.")
	f.TimeVar(&c.query.Start, "from", "Earliest reading time.")
	f.TimeVar(&c.query.End, "to", "Latest reading time.")
	f.PageVars(&c.query.PageRequest)
	return f
}

func (c *DataFilterCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.query.DataType = strings.ToUpper(c.query.DataType)
	if c.query.DataType != "" && !models.DataType(c.query.DataType).Valid() {
		c.UI.Error(fmt.Sprintf("unknown data type %q", c.query.DataType))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	page, err := pageOf(d.RecordsByFilter(ctx, c.query))
	if err != nil {
		return c.Error("filtering readings", err)
	}
	if err := c.RenderPage(page); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type DataRangeCommand struct {
	*base.Command

	query models.TimeRangeQuery
}

func (c *DataRangeCommand) Synopsis() string {
	return "List raw serial data received in a time range"
}

func (c *DataRangeCommand) Help() string {
	return `Usage: meterconsole data range -from=<time> -to=<time> [options]` + c.Flags().Help()
}

func (c *DataRangeCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("data range")
	f.TimeVar(&c.query.Start, "from", "(Required) Range start.")
	f.TimeVar(&c.query.End, "to", "(Required) Range end.")
	f.PageVars(&c.query.PageRequest)
	return f
}

func (c *DataRangeCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.query.Start == "" || c.query.End == "" {
		c.UI.Error("from and to flags are required")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	page, err := pageOf(d.DataByTimeRange(ctx, c.query))
	if err != nil {
		return c.Error("reading serial data", err)
	}
	if err := c.RenderPage(page); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type DataAuditCommand struct {
	*base.Command

	page models.PageRequest
}

func (c *DataAuditCommand) Synopsis() string {
	return "List the serial data audit trail"
}

func (c *DataAuditCommand) Help() string {
	return `Usage: meterconsole data audit [options]` + c.Flags().Help()
}

func (c *DataAuditCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("data audit")
	f.PageVars(&c.page)
	return f
}

func (c *DataAuditCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	page, err := pageOf(d.AuditLog(ctx, c.page))
	if err != nil {
		return c.Error("reading audit log", err)
	}
	if err := c.RenderPage(page); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}
