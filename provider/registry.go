package provider

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/Walnut356/syntheticproviders/debuginfo"
)

// Constructor builds a provider for a matched value.
type Constructor func(debuginfo.Value) (Provider, error)

// SummaryFunc renders a one-line summary for a matched value.
type SummaryFunc func(debuginfo.Value) (string, error)

// Entry is one row of the dispatch table: a raw-type-name pattern plus
// the provider constructor and summary renderer it selects. A nil
// constructor or summary falls through to the defaults.
type Entry struct {
	Name    string
	Pattern *regexp.Regexp
	New     Constructor
	Summary SummaryFunc
}

// Registry is an ordered pattern table mapping raw type names to
// providers. Matching is first-match-wins; values no row matches get
// DefaultProvider. Pointer, reference and array classification comes
// from the type descriptor itself and takes precedence over the table.
//
// The table is data-driven so a new layout convention is one added row,
// not new matching logic.
type Registry struct {
	entries []Entry
}

func asProvider[P Provider](ctor func(debuginfo.Value) (P, error)) Constructor {
	return func(v debuginfo.Value) (Provider, error) { return ctor(v) }
}

// NewRegistry builds the default table covering the recognized standard
// library shapes. Rows without a dedicated decoder (VecDeque, the map and
// set types, Rc/Arc, the cell family, Path) classify the display name and
// fall through to default children.
func NewRegistry() *Registry {
	return &Registry{entries: []Entry{
		{
			Name:    "string",
			Pattern: regexp.MustCompile(`^(alloc::([a-z_]+::)+)String$`),
			New:     asProvider(NewStringProvider),
			Summary: StringSummary,
		},
		{
			Name:    "os_string",
			Pattern: regexp.MustCompile(`^(std::ffi::([a-z_]+::)+)OsString$`),
		},
		{
			Name:    "str",
			Pattern: regexp.MustCompile(`^&(mut )?str$`),
			New:     asProvider(NewStrProvider),
			Summary: StrSummary,
		},
		{
			Name:    "slice",
			Pattern: regexp.MustCompile(`^&(mut )?\[.+\]$`),
			New:     asProvider(NewSliceProvider),
			Summary: SliceSummary,
		},
		{
			Name:    "vec",
			Pattern: regexp.MustCompile(`^(alloc::([a-z_]+::)+)Vec<.+>$`),
			New:     asProvider(NewVecProvider),
			Summary: VecSummary,
		},
		{
			Name:    "vec_deque",
			Pattern: regexp.MustCompile(`^(alloc::([a-z_]+::)+)VecDeque<.+>$`),
		},
		{
			Name:    "btree_set",
			Pattern: regexp.MustCompile(`^(alloc::([a-z_]+::)+)BTreeSet<.+>$`),
		},
		{
			Name:    "btree_map",
			Pattern: regexp.MustCompile(`^(alloc::([a-z_]+::)+)BTreeMap<.+>$`),
		},
		{
			Name:    "hash_map",
			Pattern: regexp.MustCompile(`^(std::collections::([a-z_]+::)+)HashMap<.+>$`),
		},
		{
			Name:    "hash_set",
			Pattern: regexp.MustCompile(`^(std::collections::([a-z_]+::)+)HashSet<.+>$`),
		},
		{
			Name:    "rc",
			Pattern: regexp.MustCompile(`^(alloc::([a-z_]+::)+)Rc<.+>$`),
		},
		{
			Name:    "arc",
			Pattern: regexp.MustCompile(`^(alloc::([a-z_]+::)+)Arc<.+>$`),
		},
		{
			Name:    "cell",
			Pattern: regexp.MustCompile(`^(core::([a-z_]+::)+)Cell<.+>$`),
		},
		{
			Name:    "ref",
			Pattern: regexp.MustCompile(`^(core::([a-z_]+::)+)Ref<.+>$`),
		},
		{
			Name:    "ref_mut",
			Pattern: regexp.MustCompile(`^(core::([a-z_]+::)+)RefMut<.+>$`),
		},
		{
			Name:    "ref_cell",
			Pattern: regexp.MustCompile(`^(core::([a-z_]+::)+)RefCell<.+>$`),
		},
		{
			Name:    "non_zero",
			Pattern: regexp.MustCompile(`^(core::([a-z_]+::)+)NonZero<.+>$`),
		},
		{
			Name:    "path_buf",
			Pattern: regexp.MustCompile(`^(std::([a-z_]+::)+)PathBuf$`),
		},
		{
			Name:    "path",
			Pattern: regexp.MustCompile(`^&(mut )?(std::([a-z_]+::)+)Path$`),
		},
		{
			Name:    "option",
			Pattern: regexp.MustCompile(`^enum2\$<core::option::Option<`),
			New:     asProvider(NewEnumProvider),
			Summary: EnumSummary,
		},
		{
			Name:    "enum",
			Pattern: regexp.MustCompile(`^enum2\$<`),
			New:     asProvider(NewEnumProvider),
			Summary: EnumSummary,
		},
		{
			Name:    "unit",
			Pattern: regexp.MustCompile(`^tuple\$<\s*>$`),
			New:     asProvider(NewUnitProvider),
			Summary: TupleSummary,
		},
		{
			Name:    "tuple",
			Pattern: regexp.MustCompile(`^tuple\$<`),
			New:     asProvider(NewTupleProvider),
			Summary: TupleSummary,
		},
	}}
}

// Register appends a row to the table. Earlier rows win, so custom
// conventions that must shadow a default row belong in a fresh Registry.
func (r *Registry) Register(e Entry) {
	r.entries = append(r.entries, e)
}

// Match returns the first row whose pattern matches the raw type name.
func (r *Registry) Match(name string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Pattern.MatchString(name) {
			return e, true
		}
	}
	return Entry{}, false
}

// ProviderFor classifies the value and constructs the matching provider.
func (r *Registry) ProviderFor(v debuginfo.Value) (Provider, error) {
	t := v.Type()
	switch {
	case t.IsPointer() || t.IsReference():
		return NewRefProvider(v)
	case t.IsArray():
		return NewArrayProvider(v)
	}

	if e, ok := r.Match(t.Name()); ok {
		Logger().Debug("matched provider",
			zap.String("type", t.Name()),
			zap.String("entry", e.Name))
		if e.New != nil {
			return e.New(v)
		}
	}
	return NewDefaultProvider(v)
}

// SummaryFor classifies the value and renders its one-line summary.
// Values without a dedicated renderer fall back to their host preview.
func (r *Registry) SummaryFor(v debuginfo.Value) (string, error) {
	t := v.Type()
	switch {
	case t.IsPointer() || t.IsReference():
		return RefSummary(v)
	case t.IsArray():
		return ArraySummary(v)
	}

	if e, ok := r.Match(t.Name()); ok && e.Summary != nil {
		return e.Summary(v)
	}
	return v.Preview(), nil
}
