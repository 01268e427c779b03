// Package bus maps the multiplier's logical signals onto the bits of its
// three 8-bit ports.
//
// Pin contract (fixed by the DUT, must not be renumbered):
//
//	ui_in  [3:0]  operand A ("input data")
//	uio_in [3:0]  operand B ("weight")
//	uio_in [4]    start strobe
//	uo_out [3:0]  result
//	uo_out [5]    done flag
//
// All conversions are pure. Values are masked to their field width before
// being placed on a port, never rejected.
package bus

// Port identifies one of the DUT's 8-bit ports.
type Port uint8

// DUT ports.
const (
	PortInput  Port = iota // ui_in, driven by the harness
	PortBidir              // uio_in, driven by the harness
	PortOutput             // uo_out, driven by the DUT
)

// String returns the pin name of the port.
func (p Port) String() string {
	switch p {
	case PortInput:
		return "ui_in"
	case PortBidir:
		return "uio_in"
	case PortOutput:
		return "uo_out"
	default:
		return "unknown"
	}
}

// Field names one logical signal inside a port value.
type Field struct {
	Name   string
	Port   Port
	Offset uint8
	Width  uint8
}

// Mask returns the field's mask aligned to bit 0.
func (f Field) Mask() uint8 {
	return uint8((uint16(1) << f.Width) - 1)
}

// Insert returns port with the field replaced by v, truncated to the field width.
func (f Field) Insert(port, v uint8) uint8 {
	m := f.Mask() << f.Offset
	return port&^m | (v<<f.Offset)&m
}

// Extract returns the field's value from port.
func (f Field) Extract(port uint8) uint8 {
	return (port >> f.Offset) & f.Mask()
}

// Field widths.
const (
	OperandWidth = 4 // W
	ResultWidth  = 4 // M
)

// Fixed fields of the observed protocol.
var (
	OperandA = Field{Name: "operand_a", Port: PortInput, Offset: 0, Width: OperandWidth}
	OperandB = Field{Name: "operand_b", Port: PortBidir, Offset: 0, Width: OperandWidth}
	Start    = Field{Name: "start", Port: PortBidir, Offset: 4, Width: 1}
	Done     = Field{Name: "done", Port: PortOutput, Offset: 5, Width: 1}
	Result   = Field{Name: "result", Port: PortOutput, Offset: 0, Width: ResultWidth}
)

// Raw bit values.
const (
	StrobeBit uint8 = 1 << 4 // uio_in bit 4
	DoneBit   uint8 = 1 << 5 // uo_out bit 5
)

// EncodeOperandA returns the ui_in value carrying operand a.
func EncodeOperandA(a uint8) uint8 {
	return OperandA.Insert(0, a)
}

// EncodeOperandBAndStrobe returns the uio_in value carrying operand b and,
// if strobe is set, the start bit.
func EncodeOperandBAndStrobe(b uint8, strobe bool) uint8 {
	v := OperandB.Insert(0, b)
	if strobe {
		v |= StrobeBit
	}
	return v
}

// DecodeDone reports whether the done flag is set in a uo_out value.
func DecodeDone(out uint8) bool {
	return out&DoneBit != 0
}

// DecodeResult extracts the result field from a uo_out value.
func DecodeResult(out uint8) uint8 {
	return Result.Extract(out)
}

// DecodeStrobe reports whether the start bit is set in a uio_in value.
func DecodeStrobe(bidir uint8) bool {
	return bidir&StrobeBit != 0
}
