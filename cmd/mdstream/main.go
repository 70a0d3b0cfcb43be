// Command mdstream streams a Markdown document through the incremental parser
// in randomly sized chunks, then prints the resulting nodes or HTML.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/renameio"

	"github.com/jcorbin/mdstream/internal/bfsink"
	"github.com/jcorbin/mdstream/internal/chunkio"
	"github.com/jcorbin/mdstream/internal/textutil"
	"github.com/jcorbin/mdstream/streamdown"
)

type config struct {
	seed     int64
	min, max int
	size     int
	delay    time.Duration
	limit    int
	html     bool
	output   string
	verbose  bool
}

func main() {
	var cfg config
	flag.Int64Var(&cfg.seed, "seed", 0, "random chunk size seed; 0 seeds from the current time")
	flag.IntVar(&cfg.min, "min", 2, "minimum random chunk size in bytes")
	flag.IntVar(&cfg.max, "max", 19, "maximum random chunk size in bytes")
	flag.IntVar(&cfg.size, "size", 0, "use fixed size chunks instead of random ones")
	flag.DurationVar(&cfg.delay, "delay", 0, "pause between chunks, e.g. 20ms")
	flag.IntVar(&cfg.limit, "limit", 0, "discard constructs longer than this many bytes; 0 for no limit")
	flag.BoolVar(&cfg.html, "html", false, "render HTML instead of a node listing")
	flag.StringVar(&cfg.output, "o", "", "write output to a file, atomically replacing it")
	flag.BoolVar(&cfg.verbose, "v", false, "log every chunk and the parser state after it")
	flag.Parse()

	logOut := textutil.PrefixWriter("> log: ", os.Stderr)
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetFlags(0)

	in := os.Stdin
	if name := flag.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, cfg config) error {
	sc := bufio.NewScanner(in)
	if cfg.size > 0 {
		sc.Split(chunkio.FixedChunks(cfg.size))
	} else {
		if cfg.seed == 0 {
			cfg.seed = time.Now().UnixNano()
		}
		if cfg.verbose {
			log.Printf("seed %v", cfg.seed)
		}
		sc.Split(chunkio.RandomChunks(rand.New(rand.NewSource(cfg.seed)), cfg.min, cfg.max))
	}

	var (
		tree  = streamdown.Tree{MergeText: true}
		html  = bfsink.New()
		sink  streamdown.Sink
		write func(w io.Writer) error
	)
	if cfg.html {
		sink = html
		write = html.WriteHTML
	} else {
		sink = &tree
		write = func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%+v\n", tree)
			return err
		}
	}

	var opts []streamdown.Option
	if cfg.limit > 0 {
		opts = append(opts, streamdown.WithMaxConstructLen(cfg.limit), streamdown.WithLogf(log.Printf))
	}
	p := streamdown.NewParser(sink, opts...)

	n, err := chunkio.Feed(p, sc, func(chunk []byte) {
		if cfg.verbose {
			log.Printf("chunk %q -> %v", chunk, p)
		}
		if cfg.delay > 0 {
			time.Sleep(cfg.delay)
		}
	})
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if cfg.verbose {
		log.Printf("fed %v chunks", n)
	}
	if kind, size, open := p.Pending(); open {
		log.Printf("dropping unterminated %v (%v bytes)", kind, size)
	}

	if cfg.output == "" {
		out := &textutil.ErrWriter{Writer: os.Stdout}
		return write(out)
	}
	return writeFile(cfg.output, write)
}

// writeFile atomically replaces the named file with content from write.
func writeFile(name string, write func(w io.Writer) error) (rerr error) {
	pf, err := renameio.TempFile("", name)
	if err != nil {
		return fmt.Errorf("create %v: %w", name, err)
	}
	defer func() {
		if cerr := pf.Cleanup(); rerr == nil && cerr != nil {
			rerr = cerr
		}
	}()

	buf := bufio.NewWriter(pf)
	if err := write(buf); err != nil {
		return fmt.Errorf("write %v: %w", name, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write %v: %w", name, err)
	}
	return pf.CloseAtomicallyReplace()
}
