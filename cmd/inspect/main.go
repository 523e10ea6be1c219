package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero"
	"golang.org/x/term"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/debuginfo/infotest"
	"github.com/Walnut356/syntheticproviders/provider"
	"github.com/Walnut356/syntheticproviders/wazerotarget"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to a wasm module whose memory to inspect")
		typeName    = flag.String("type", "", "Declared type of the value at -addr (e.g. \"&str\")")
		addrStr     = flag.String("addr", "", "Guest address of the value to inspect (hex or decimal)")
		ptrSize     = flag.Uint64("ptrsize", 4, "Debuggee pointer width in bytes (wasm mode)")
		interactive = flag.Bool("i", false, "Interactive tree explorer")
	)
	flag.Parse()

	var (
		tg    *infotest.Target
		roots []root
		err   error
	)
	if *wasmFile != "" {
		tg, roots, err = wasmTarget(*wasmFile, *typeName, *addrStr, *ptrSize)
	} else {
		tg, roots = demoTarget()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(tg, roots); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printTree(tg, roots); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// wasmTarget instantiates the module and points the Rust type layouts at
// its linear memory.
func wasmTarget(file, typeName, addrStr string, ptrSize uint64) (*infotest.Target, []root, error) {
	if typeName == "" || addrStr == "" {
		return nil, nil, fmt.Errorf("-wasm requires -type and -addr")
	}
	addr, err := parseAddr(addrStr)
	if err != nil {
		return nil, nil, fmt.Errorf("parse -addr: %w", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	mod, err := rt.Instantiate(ctx, data)
	if err != nil {
		return nil, nil, fmt.Errorf("instantiate: %w", err)
	}

	mem, err := wazerotarget.FromModule(mod)
	if err != nil {
		return nil, nil, err
	}
	tg := infotest.NewTarget(mem)
	rustTypes(tg, ptrSize)

	if _, ok := tg.FindFirstType(typeName); !ok {
		return nil, nil, fmt.Errorf("unknown type %q", typeName)
	}
	return tg, []root{{name: "value", typeName: typeName, addr: addr}}, nil
}

func parseAddr(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

// maxTreeChildren bounds how many children a single node prints.
const maxTreeChildren = 64

func printTree(tg *infotest.Target, roots []root) error {
	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w
	}

	reg := provider.NewRegistry()
	for _, r := range roots {
		t, ok := tg.FindFirstType(r.typeName)
		if !ok {
			return fmt.Errorf("unknown type %q", r.typeName)
		}
		v := tg.ValueAt(r.name, t.(*infotest.Type), r.addr)
		if err := printValue(reg, v, 0, width); err != nil {
			return err
		}
	}
	return nil
}

func printValue(reg *provider.Registry, v debuginfo.Value, depth, width int) error {
	p, err := reg.ProviderFor(v)
	if err != nil {
		return err
	}
	summary, err := reg.SummaryFor(v)
	if err != nil {
		summary = fmt.Sprintf("<%v>", err)
	}

	line := fmt.Sprintf("%s%s: %s = %s",
		strings.Repeat("  ", depth), v.Name(), p.DisplayTypeName(), summary)
	if len(line) > width {
		line = line[:width-3] + "..."
	}
	fmt.Println(line)

	if depth >= 3 || !p.HasChildren() {
		return nil
	}
	n := p.Count()
	if n > maxTreeChildren {
		n = maxTreeChildren
	}
	for i := 0; i < n; i++ {
		c, err := p.ChildAtIndex(i)
		if err != nil {
			return err
		}
		if err := printValue(reg, c, depth+1, width); err != nil {
			return err
		}
	}
	return nil
}
