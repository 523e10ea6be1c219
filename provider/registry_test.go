package provider

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/debuginfo/infotest"
)

func TestRegistryMatch(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		in    string
		entry string
		ok    bool
	}{
		{"alloc::string::String", "string", true},
		{"std::ffi::os_str::OsString", "os_string", true},
		{"&str", "str", true},
		{"&mut str", "str", true},
		{"&[u8]", "slice", true},
		{"&mut [i64]", "slice", true},
		{"alloc::vec::Vec<u32,alloc::alloc::Global>", "vec", true},
		{"alloc::collections::vec_deque::VecDeque<u8,alloc::alloc::Global>", "vec_deque", true},
		{"alloc::collections::btree::map::BTreeMap<u8,u8,alloc::alloc::Global>", "btree_map", true},
		{"std::collections::hash::map::HashMap<u8,u8,std::hash::random::RandomState>", "hash_map", true},
		{"alloc::rc::Rc<u8,alloc::alloc::Global>", "rc", true},
		{"alloc::sync::Arc<u8,alloc::alloc::Global>", "arc", true},
		{"core::cell::RefCell<u8>", "ref_cell", true},
		{"core::num::nonzero::NonZero<u32>", "non_zero", true},
		{"std::path::PathBuf", "path_buf", true},
		{"&std::path::Path", "path", true},
		{"enum2$<core::option::Option<u8> >", "option", true},
		{"enum2$<demo::Message>", "enum", true},
		{"tuple$<>", "unit", true},
		{"tuple$<u8,u32>", "tuple", true},
		{"demo::Point", "", false},
		{"u32", "", false},
	}
	for _, tt := range tests {
		e, ok := reg.Match(tt.in)
		if ok != tt.ok || e.Name != tt.entry {
			t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.in, e.Name, ok, tt.entry, tt.ok)
		}
	}
}

func TestRegistryMatch_FirstWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Entry{
		Name:    "custom_vec",
		Pattern: regexp.MustCompile(`Vec<`),
	})

	// the stock vec row precedes the appended one
	e, ok := reg.Match("alloc::vec::Vec<u8,alloc::alloc::Global>")
	if !ok || e.Name != "vec" {
		t.Fatalf("Match = %q, %v; want vec, true", e.Name, ok)
	}

	// names only the new row covers reach it
	e, ok = reg.Match("demo::Vec<u8>")
	if !ok || e.Name != "custom_vec" {
		t.Fatalf("Match = %q, %v; want custom_vec, true", e.Name, ok)
	}
}

func TestProviderFor(t *testing.T) {
	env := newEnv(t)
	reg := NewRegistry()

	uchar := env.tg.Define(&infotest.Type{TypeName: "unsigned char", Size: 1, Tag: debuginfo.BasicUnsignedChar})
	arr := defineArray(env, uchar, 2)
	str := env.defineStr("&str")
	env.mem.PutU64(0x1008, 0)

	tests := []struct {
		name string
		typ  *infotest.Type
		want string
	}{
		{"pointer", env.u8Ptr, "*provider.RefProvider"},
		{"array", arr, "*provider.ArrayProvider"},
		{"str", str, "*provider.StrProvider"},
		{"fallthrough", env.u32, "*provider.DefaultProvider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := env.tg.ValueAt("v", tt.typ, 0x1000)
			p, err := reg.ProviderFor(v)
			if err != nil {
				t.Fatalf("ProviderFor failed: %v", err)
			}
			if got := fmt.Sprintf("%T", p); got != tt.want {
				t.Errorf("ProviderFor = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProviderFor_ClassifyOnlyRow(t *testing.T) {
	env := newEnv(t)
	reg := NewRegistry()

	// rows without a constructor classify the name, children stay default
	deque := env.tg.Define(&infotest.Type{
		TypeName: "alloc::collections::vec_deque::VecDeque<u8,alloc::alloc::Global>",
		Size:     32,
		Fields:   []infotest.Field{{Name: "len", Offset: 0, Type: env.usize}},
	})
	v := env.tg.ValueAt("q", deque, 0x1000)
	p, err := reg.ProviderFor(v)
	if err != nil {
		t.Fatalf("ProviderFor failed: %v", err)
	}
	if _, ok := p.(*DefaultProvider); !ok {
		t.Fatalf("ProviderFor = %T, want *DefaultProvider", p)
	}
}

func TestSummaryFor(t *testing.T) {
	env := newEnv(t)
	reg := NewRegistry()

	str := env.defineStr("&str")
	env.mem.PutU64(0x1000, 0x1100)
	env.mem.PutU64(0x1008, 2)
	env.mem.PutBytes(0x1100, []byte("hi"))

	s, err := reg.SummaryFor(env.tg.ValueAt("greeting", str, 0x1000))
	if err != nil {
		t.Fatalf("SummaryFor failed: %v", err)
	}
	if s != "hi" {
		t.Errorf("SummaryFor(&str) = %q, want hi", s)
	}

	// fallthrough renders the host preview
	env.mem.PutU32(0x1200, 9)
	s, err = reg.SummaryFor(env.tg.ValueAt("n", env.u32, 0x1200))
	if err != nil {
		t.Fatalf("SummaryFor failed: %v", err)
	}
	if s != "9" {
		t.Errorf("SummaryFor(u32) = %q, want 9", s)
	}
}
