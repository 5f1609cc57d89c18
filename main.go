// Copyright
// SPDX-License-Identifier: MIT
// marknote: terminal notes with inline style markers, a live preview and a title-keyed store
package main

import (
    "errors"
    "flag"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/atotto/clipboard"
    "github.com/fatih/color"

    "marknote/internal/config"
    "marknote/internal/logger"
    "marknote/internal/markup"
    "marknote/internal/store"
    appTUI "marknote/internal/tui"
    "marknote/internal/tui/widgets/preview"
)

const Version = "0.3.0"

var (
    bold   = color.New(color.Bold).SprintFunc()
    faint  = color.New(color.Faint).SprintFunc()
    green  = color.New(color.FgGreen).SprintFunc()
    yellow = color.New(color.FgYellow).SprintFunc()
)

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        cmdEdit(nil)
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "-v", "--version":
        fmt.Println("marknote", Version)
        return
    case "init":
        cmdInit(os.Args[2:])
    case "edit":
        cmdEdit(os.Args[2:])
    case "render":
        cmdRender(os.Args[2:])
    case "list":
        cmdList(os.Args[2:])
    case "favorites":
        cmdFavorites(os.Args[2:])
    case "export":
        cmdExport(os.Args[2:])
    case "import":
        cmdImport(os.Args[2:])
    default:
        usage()
    }
}

func usage() {
    fmt.Print(`marknote ` + Version + `
Notes with inline style markers (**bold**, *italic*, __underline__, [color:#RRGGBB]..[/color],
[size:N]..[/size], {{align:center}} line prefixes) and a live formatted preview.
USAGE
  marknote <command> [options]
COMMANDS
  edit         Open the editor (default when no command is given)
  render       Print the formatted preview of a note file
  list         List saved documents
  favorites    List favorite documents
  export       Write a saved document to stdout, a file or the clipboard
  import       Save note files under their titles
  init         Scaffold marknote.config.json and the state directory
  help         Show help (try: marknote help edit)
  version      Print version
NOTES
  • Documents autosave under their first line once it is no longer the placeholder title.
  • Set NO_COLOR=1 to disable colors; MARKNOTE_* variables override the config file.
` + "\n")
}

func helpTopic(name string) {
    switch name {
    case "edit":
        fmt.Print(`USAGE
  marknote edit [--title TITLE] [--config PATH]
DESCRIPTION
  Opens the editor. Selections are made with a mark: press ctrl+space at one end,
  move the cursor to the other end, then apply a style.
KEYS
  ctrl+b/t/u          bold / italic / underline
  alt+l, alt+e, alt+r align left / center / right
  ctrl+k, ctrl+z      color / font size picker
  ctrl+s              save          ctrl+p   add page
  ctrl+o              load/import   ctrl+n   new document
  ctrl+f              favorite      ctrl+g   favorites view
  ctrl+d              diff since last save
  ctrl+y              copy to clipboard
  f1                  help          ctrl+c   quit
OPTIONS
  --title TITLE   Open a saved document instead of a blank one
  --config PATH   Config file (default: marknote.config.json)
` + "\n")
    case "render":
        fmt.Print(`USAGE
  marknote render [--plain] [--width N] FILE|-
DESCRIPTION
  Parses the markers in FILE (or stdin for -) and prints the styled preview.
  --plain prints the text with every marker stripped.
` + "\n")
    case "export":
        fmt.Print(`USAGE
  marknote export --title TITLE [--out PATH] [--plain] [--clipboard]
DESCRIPTION
  Writes the saved document to stdout, or to --out, or to the clipboard.
  --plain strips every marker first.
` + "\n")
    default:
        usage()
    }
}

/* ---------- wiring ---------- */

type app struct {
    cfg   *config.Config
    log   logger.ILogger
    store *store.Store
    favs  *store.Favorites
}

func openApp(configPath string) *app {
    cfg, err := config.Load(configPath)
    if err != nil {
        fail(err)
    }
    if cfg.NoColor {
        color.NoColor = true
    }
    log := logger.NewFileLogger(cfg.LogPath(), cfg.Debug)
    openLog = log
    st, favs, err := store.LoadFile(cfg.DocumentsPath())
    if err != nil {
        log.Error("main", "load documents failed", map[string]interface{}{"error": err})
        fail(err)
    }
    return &app{cfg: cfg, log: log, store: st, favs: favs}
}

func (a *app) persist() error {
    return store.SaveFile(a.cfg.DocumentsPath(), a.store, a.favs)
}

func (a *app) close() { _ = a.log.Sync() }

// openLog is flushed by fail; deferred closes do not run past os.Exit.
var (
    openLog logger.ILogger
    osExit  = os.Exit
)

func fail(err error) {
    color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
    exit(1)
}

func exit(code int) {
    if openLog != nil {
        _ = openLog.Sync()
    }
    osExit(code)
}

func newFlags(name string) (*flag.FlagSet, *string) {
    fs := flag.NewFlagSet(name, flag.ExitOnError)
    fs.Usage = func() { helpTopic(name) }
    cfgPath := fs.String("config", config.DefaultPath, "Config file")
    return fs, cfgPath
}

/* ---------- commands ---------- */

func cmdInit(args []string) {
    fs, cfgPath := newFlags("init")
    _ = fs.Parse(args)
    if _, err := os.Stat(*cfgPath); errors.Is(err, os.ErrNotExist) {
        if err := config.Save(*cfgPath, config.Default()); err != nil {
            fail(err)
        }
        fmt.Println("Wrote", *cfgPath)
    } else {
        fmt.Println(*cfgPath, "already exists; not overwriting")
    }
    a := openApp(*cfgPath)
    defer a.close()
    if _, err := os.Stat(a.cfg.DocumentsPath()); errors.Is(err, os.ErrNotExist) {
        if err := a.persist(); err != nil {
            fail(err)
        }
        fmt.Println("Initialized", a.cfg.DocumentsPath())
    }
}

func cmdEdit(args []string) {
    fs, cfgPath := newFlags("edit")
    title := fs.String("title", "", "Saved document to open")
    _ = fs.Parse(args)

    a := openApp(*cfgPath)
    defer a.close()
    if *title != "" {
        if _, err := a.store.Get(*title); err != nil {
            fail(err)
        }
    }
    a.log.Info("main", "editor start", map[string]interface{}{"documents": a.store.Len(), "title": *title})
    err := appTUI.Run(appTUI.Options{
        Config:    a.cfg,
        Store:     a.store,
        Favorites: a.favs,
        Log:       a.log,
        Persist:   a.persist,
        Open:      *title,
    })
    if err != nil {
        a.log.Error("main", "editor failed", map[string]interface{}{"error": err})
        fail(err)
    }
}

func cmdRender(args []string) {
    fs, cfgPath := newFlags("render")
    plain := fs.Bool("plain", false, "Strip markers instead of styling")
    width := fs.Int("width", 0, "Pad lines to this width so alignment shows")
    _ = fs.Parse(args)
    if fs.NArg() != 1 {
        helpTopic("render")
        exit(2)
    }
    cfg, err := config.Load(*cfgPath)
    if err != nil {
        fail(err)
    }

    var text string
    if path := fs.Arg(0); path == "-" {
        data, err := io.ReadAll(os.Stdin)
        if err != nil {
            fail(fmt.Errorf("read stdin: %w", err))
        }
        text = strings.ReplaceAll(string(data), "\r\n", "\n")
    } else if text, err = store.ReadText(path); err != nil {
        fail(err)
    }

    if *plain {
        fmt.Println(markup.PlainText(text))
        return
    }
    fmt.Println(preview.New(cfg.NoColor).View(text, *width))
}

func cmdList(args []string) {
    fs, cfgPath := newFlags("list")
    _ = fs.Parse(args)
    a := openApp(*cfgPath)
    defer a.close()

    titles := a.store.Titles()
    if len(titles) == 0 {
        fmt.Println(faint("No saved documents."))
        return
    }
    for _, t := range titles {
        e, err := a.store.Get(t)
        if err != nil {
            continue
        }
        mark := " "
        if e.IsFavorite {
            mark = yellow("★")
        }
        fmt.Printf("%s %s  %s\n", mark, bold(t), faint(describe(e)))
    }
}

func cmdFavorites(args []string) {
    fs, cfgPath := newFlags("favorites")
    _ = fs.Parse(args)
    a := openApp(*cfgPath)
    defer a.close()

    list := a.favs.List()
    if len(list) == 0 {
        fmt.Println(faint("No favorites yet."))
        return
    }
    for i, t := range list {
        line := fmt.Sprintf("%d) %s", i+1, bold(t))
        if e, err := a.store.Get(t); err == nil {
            line += "  " + faint(describe(e))
        }
        fmt.Println(line)
    }
}

func describe(e store.Entry) string {
    return fmt.Sprintf("%d page(s), %d words, saved %s",
        e.PageCount, markup.WordCount(e.Content), e.SavedAt.Local().Format(time.DateTime))
}

func cmdExport(args []string) {
    fs, cfgPath := newFlags("export")
    title := fs.String("title", "", "Saved document to export (required)")
    out := fs.String("out", "", "Write to this file instead of stdout")
    plain := fs.Bool("plain", false, "Strip markers")
    toClipboard := fs.Bool("clipboard", false, "Copy to the system clipboard")
    _ = fs.Parse(args)
    if *title == "" {
        helpTopic("export")
        exit(2)
    }
    a := openApp(*cfgPath)
    defer a.close()

    e, err := a.store.Get(*title)
    if err != nil {
        fail(err)
    }
    content := e.Content
    if *plain {
        content = markup.PlainText(content)
    }
    switch {
    case *toClipboard:
        if err := clipboard.WriteAll(content); err != nil {
            fail(fmt.Errorf("copy to clipboard: %w", err))
        }
        fmt.Println(green("Copied"), *title)
    case *out != "":
        if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
            fail(err)
        }
        if err := os.WriteFile(*out, []byte(content), 0644); err != nil {
            fail(fmt.Errorf("write export: %w", err))
        }
        fmt.Println(green("Wrote"), *out)
    default:
        fmt.Println(content)
    }
    a.log.Info("main", "exported", map[string]interface{}{"title": *title, "out": *out, "plain": *plain, "clipboard": *toClipboard})
}

func cmdImport(args []string) {
    fs, cfgPath := newFlags("import")
    _ = fs.Parse(args)
    if fs.NArg() == 0 {
        usage()
        exit(2)
    }
    a := openApp(*cfgPath)
    defer a.close()

    failed := false
    for _, path := range fs.Args() {
        title, err := a.store.Import(path)
        if err != nil {
            color.New(color.FgRed).Fprintln(os.Stderr, "  ✗", err)
            a.log.Warn("main", "import failed", map[string]interface{}{"path": path, "error": err})
            failed = true
            continue
        }
        fmt.Printf("  %s %s → %q\n", green("✓"), path, title)
    }
    if err := a.persist(); err != nil {
        fail(err)
    }
    if failed {
        exit(1)
    }
}
