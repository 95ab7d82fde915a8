package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"mediabridge/internal/client"
)

const clientTimeout = 2 * time.Minute

func newController(confirm client.ConfirmFunc) *client.Controller {
	baseURL := client.ResolveBaseURL(os.Getenv, nil)
	bridge := client.NewHTTPBridge(baseURL, &http.Client{Timeout: clientTimeout})

	return client.NewController(bridge, confirm)
}

// connect probes the bridge first; every submission needs a connected
// bridge.
func connect(ctx context.Context, c *client.Controller) {
	if state := c.CheckHealth(ctx); state != client.Connected {
		ExitOnError(fmt.Errorf("bridge is %s at %s", state, client.ResolveBaseURL(os.Getenv, nil)))
	}
}

func parseFlags(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args[2:]); err != nil {
		ExitOnError(err)
	}
}

func HandleHealth(_ []string) {
	c := newController(nil)
	state := c.CheckHealth(context.Background())
	fmt.Println(state) //nolint

	if state != client.Connected {
		os.Exit(1)
	}
}

func HandleList(_ []string) {
	ctx := context.Background()
	c := newController(nil)
	connect(ctx, c)

	if err := c.LoadEntries(ctx); err != nil {
		ExitOnError(err)
	}

	printGallery(c.State())
}

func HandleUpload(args []string) {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	title := fs.String("title", "", "entry title")
	caption := fs.String("caption", "", "optional caption")
	kind := fs.String("type", "image", "content kind: image or video")
	file := fs.String("file", "", "local file to upload")
	externalURL := fs.String("url", "", "external media URL, used instead of -file")
	parseFlags(fs, args)

	ctx := context.Background()
	c := newController(nil)
	connect(ctx, c)

	c.Edit(func(s client.ViewState) client.ViewState {
		s = s.WithTab(client.Tab(*kind))
		s.Title = *title
		s.Caption = *caption
		s.UseExternalURL = *externalURL != ""
		s.ExternalURL = *externalURL

		return s
	})

	if *file != "" && *externalURL == "" {
		selected, err := readFile(*file)
		if err != nil {
			ExitOnError(err)
		}
		if err := c.SelectFile(selected); err != nil {
			ExitOnError(err)
		}
	}

	resp, err := c.SubmitUpload(ctx)
	if err != nil {
		ExitOnError(errors.New(c.State().Message.Text))
	}

	fmt.Printf("%s\npage id: %s\n", c.State().Message.Text, resp.PageID) //nolint
	if resp.Message != "" {
		fmt.Println(resp.Message) //nolint
	}
	if resp.ArchiveURL != "" {
		fmt.Println("archived copy:", resp.ArchiveURL) //nolint
	}
}

func HandleAddURL(args []string) {
	fs := flag.NewFlagSet("add-url", flag.ExitOnError)
	title := fs.String("title", "", "entry title")
	url := fs.String("url", "", "URL to bookmark")
	caption := fs.String("caption", "", "optional caption")
	parseFlags(fs, args)

	ctx := context.Background()
	c := newController(nil)
	connect(ctx, c)

	c.Edit(func(s client.ViewState) client.ViewState {
		s = s.WithTab(client.URLTab)
		s.Title = *title
		s.URL = *url
		s.Caption = *caption

		return s
	})

	resp, err := c.SubmitURLEntry(ctx)
	if err != nil {
		ExitOnError(errors.New(c.State().Message.Text))
	}

	fmt.Printf("%s\npage id: %s\n", c.State().Message.Text, resp.PageID) //nolint
}

func HandleDelete(args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "page id to archive")
	title := fs.String("title", "", "title shown in the confirmation prompt")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	parseFlags(fs, args)

	if *id == "" {
		ExitOnError(errors.New("-id is required"))
	}
	if *title == "" {
		*title = *id
	}

	confirm := promptConfirm
	if *yes {
		confirm = func(string) bool { return true }
	}

	ctx := context.Background()
	c := newController(confirm)
	connect(ctx, c)

	deleted, err := c.DeleteEntry(ctx, *id, *title)
	if err != nil {
		ExitOnError(errors.New(c.State().Message.Text))
	}
	if !deleted {
		fmt.Println("cancelled") //nolint

		return
	}

	printGallery(c.State())
}

func promptConfirm(title string) bool {
	fmt.Printf("Are you sure you want to delete %q? [y/N] ", title) //nolint

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}

// readFile loads a local file the way a browser file picker would describe
// it. Oversized files are not read; the form rejects them on size alone.
func readFile(path string) (client.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return client.SelectedFile{}, err
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return client.SelectedFile{}, err
	}

	selected := client.SelectedFile{
		Name:        filepath.Base(path),
		ContentType: mtype.String(),
		Size:        info.Size(),
	}
	if info.Size() > client.MaxSelectableFileSize {
		return selected, nil
	}

	selected.Data, err = os.ReadFile(path)
	if err != nil {
		return client.SelectedFile{}, err
	}

	return selected, nil
}

func printGallery(state client.ViewState) {
	items := client.Gallery(state.Entries, nil)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tURL\tCAPTION\tCREATED") //nolint
	for _, item := range items {
		kind := item.Type
		if !item.HasMedia() {
			kind = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", //nolint
			item.ID, item.Title, kind, item.URL, item.Caption, item.Created)
	}
	_ = w.Flush()

	fmt.Println(state.Message.Text) //nolint
}
