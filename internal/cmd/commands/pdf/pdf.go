package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/pkg/dashboard"
	"github.com/aqualab/meterconsole/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Request, review and approve PDF exports"
}

func (c *Command) Help() string {
	return `Usage: meterconsole pdf <subcommand> [options] [args]

  This command groups subcommands for the PDF export workflow. A record is
  requested, then reviewed, then approved; once approved it can be
  downloaded.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// currentUserID resolves the id of the logged-in user for flags left at 0.
func currentUserID(ctx context.Context, d *dashboard.Dashboard, id int64) (int64, error) {
	if id != 0 {
		return id, nil
	}
	res := d.CurrentUser(ctx)
	if !res.OK() {
		return 0, fmt.Errorf("error reading current user: %w", res.Err)
	}
	return res.Data.ID, nil
}

type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List PDF records"
}

func (c *ListCommand) Help() string {
	return `Usage: meterconsole pdf list [options]` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("pdf list")
}

func (c *ListCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.PdfRecords(ctx)
	if !res.OK() {
		return c.Error("listing PDF records", res.Err)
	}
	if err := c.RenderPage(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show one PDF record"
}

func (c *GetCommand) Help() string {
	return `Usage: meterconsole pdf get [options] <id>` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("pdf get")
}

func (c *GetCommand) Run(args []string) int {
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

	ctx, cancel := c.Context()
	defer cancel()

	res := d.PdfRecord(ctx, id)
	if !res.OK() {
		return c.Error("reading PDF record", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type RequestCommand struct {
	*base.Command

	flagRequester int64
	flagDataID    int64
	flagType      string
	flagReason    string
}

func (c *RequestCommand) Synopsis() string {
	return "Request a PDF export of one reading"
}

func (c *RequestCommand) Help() string {
	return `Usage: meterconsole pdf request -data-id=<id> -type=<type> [options]

  Ask the server to produce a PDF of one data record. The requester
  defaults to the logged-in user.` +
		c.Flags().Help()
}

func (c *RequestCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("pdf request")
	f.Int64Var(&c.flagRequester, "requester", 0, "Requesting user id. Defaults to the logged-in user.")
	f.Int64Var(&c.flagDataID, "data-id", 0, "(Required) Id of the data record.")
	f.StringVar(&c.flagType, "type", "",
		"(Required) Data type: PH, ORP, MV, PHCAL, ORPCAL or TEMPERATURECAL.")
	f.StringVar(&c.flagReason, "reason", "", "Why the export is needed.")
	return f
}

func (c *RequestCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.flagDataID <= 0 {
		c.UI.Error("data-id flag is required")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	requester, err := currentUserID(ctx, d, c.flagRequester)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	req := models.PdfRequest{
		RequesterID:   requester,
		DataID:        c.flagDataID,
		DataType:      models.DataType(strings.ToUpper(c.flagType)),
		RequestReason: c.flagReason,
	}
	if err := req.Validate(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid request: %v", err))
		return 1
	}

	res := d.RequestSinglePdf(ctx, req)
	if !res.OK() {
		return c.Error("requesting PDF", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type ReviewCommand struct {
	*base.Command

	flagReviewer int64
	flagReject   bool
	flagReason   string
}

func (c *ReviewCommand) Synopsis() string {
	return "Review a requested PDF record"
}

func (c *ReviewCommand) Help() string {
	return `Usage: meterconsole pdf review -reason=<text> [options] <id>

  Mark a pending record as reviewed, or rejected with -reject. Records that
  were already reviewed are refused without contacting the server.` +
		c.Flags().Help()
}

func (c *ReviewCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("pdf review")
	f.Int64Var(&c.flagReviewer, "reviewer", 0, "Reviewer user id. Defaults to the logged-in user.")
	f.BoolVar(&c.flagReject, "reject", false, "Reject instead of marking reviewed.")
	f.StringVar(&c.flagReason, "reason", "", "(Required) Review remark.")
	return f
}

func (c *ReviewCommand) Run(args []string) int {
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
	if strings.TrimSpace(c.flagReason) == "" {
		c.UI.Error("reason flag is required")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	rec := d.PdfRecord(ctx, id)
	if !rec.OK() {
		return c.Error("reading PDF record", rec.Err)
	}
	if !rec.Data.CanReview() {
		c.UI.Error(fmt.Sprintf("PDF record %d is not pending review (review status %s)", id, rec.Data.ReviewStatus))
		return 1
	}

	reviewer, err := currentUserID(ctx, d, c.flagReviewer)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	status := models.ReviewReviewed
	if c.flagReject {
		status = models.ReviewRejected
	}
	res := d.ReviewPdf(ctx, models.ReviewRequest{
		PdfRecordID:    id,
		ReviewerUserID: reviewer,
		ReviewStatus:   status,
		ReviewReason:   c.flagReason,
	})
	if !res.OK() {
		return c.Error("reviewing PDF record", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type ApproveCommand struct {
	*base.Command

	flagApprover int64
	flagReject   bool
	flagReason   string
}

func (c *ApproveCommand) Synopsis() string {
	return "Approve a reviewed PDF record"
}

func (c *ApproveCommand) Help() string {
	return `Usage: meterconsole pdf approve -reason=<text> [options] <id>

  Approve a reviewed record, or reject it with -reject. Records that are not
  awaiting approval are refused without contacting the server.` +
		c.Flags().Help()
}

func (c *ApproveCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("pdf approve")
	f.Int64Var(&c.flagApprover, "approver", 0, "Approver user id. Defaults to the logged-in user.")
	f.BoolVar(&c.flagReject, "reject", false, "Reject instead of approving.")
	f.StringVar(&c.flagReason, "reason", "", "(Required) Approval remark.")
	return f
}

func (c *ApproveCommand) Run(args []string) int {
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
	if strings.TrimSpace(c.flagReason) == "" {
		c.UI.Error("reason flag is required")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	rec := d.PdfRecord(ctx, id)
	if !rec.OK() {
		return c.Error("reading PDF record", rec.Err)
	}
	if !rec.Data.CanApprove() {
		c.UI.Error(fmt.Sprintf("PDF record %d is not awaiting approval (review %s, approval %s)",
			id, rec.Data.ReviewStatus, rec.Data.ApprovalStatus))
		return 1
	}

	approver, err := currentUserID(ctx, d, c.flagApprover)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	status := models.ApprovalApproved
	if c.flagReject {
		status = models.ApprovalRejected
	}
	res := d.ApprovePdf(ctx, models.ApproveRequest{
		PdfRecordID:    id,
		ApproverUserID: approver,
		ApprovalStatus: status,
		ApproveReason:  c.flagReason,
	})
	if !res.OK() {
		return c.Error("approving PDF record", res.Err)
	}
	c.UI.Info(fmt.Sprintf("PDF record %d %s", id, strings.ToLower(string(status))))
	return 0
}
