// Package wazerotarget adapts a wazero guest's linear memory to the
// debuginfo.Memory interface, so providers can decode Rust values living
// inside a wasm32 guest. Addresses are guest offsets into linear memory.
package wazerotarget

import (
	"fmt"
	"math"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/Walnut356/syntheticproviders/errors"
)

// Memory reads a wazero module's linear memory. Reads are copied out:
// wazero hands back views into the backing buffer, which move when the
// guest grows its memory.
type Memory struct {
	mem api.Memory
}

// New wraps an api.Memory.
func New(mem api.Memory) *Memory {
	return &Memory{mem: mem}
}

// FromModule wraps the module's exported linear memory.
func FromModule(mod api.Module) (*Memory, error) {
	mem := mod.Memory()
	if mem == nil {
		return nil, errors.NotFound(errors.PhaseRead, "linear memory", mod.Name())
	}
	Logger().Debug("attached guest memory",
		zap.String("module", mod.Name()),
		zap.Uint32("size", mem.Size()))
	return &Memory{mem: mem}, nil
}

// Read implements debuginfo.Memory. Out-of-range reads surface as
// unreadable-memory errors, never as short data.
func (m *Memory) Read(addr, length uint64) ([]byte, error) {
	if addr > math.MaxUint32 || length > math.MaxUint32 || addr+length > math.MaxUint32 {
		return nil, errors.ReadFailed(nil, addr, length,
			fmt.Errorf("outside 32-bit guest address space"))
	}
	b, ok := m.mem.Read(uint32(addr), uint32(length))
	if !ok {
		return nil, errors.ReadFailed(nil, addr, length,
			fmt.Errorf("outside guest memory (size %d)", m.mem.Size()))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
