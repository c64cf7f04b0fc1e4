package ship

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

// Optional field bits of the save record
const (
	bitExperience      = 0
	bitCulture         = 1
	bitFlags           = 2
	bitTradeCoordinate = 4
)

// maxSavedStringLen bounds names read from save data
const maxSavedStringLen = 1 << 12

// maxSavedComponents bounds the component count read from save data
const maxSavedComponents = 1 << 10

// knownFlags are the special flag bits a save may carry
const knownFlags = FlagStarbaseDeployed | FlagMerchantLeftHomeworld | FlagMerchantLeftOpponentWorld

// Encode writes the ship as a big-endian binary record: fixed fields, then a
// presence byte, then the optional fields it announces. Zero-valued optional
// fields are left out.
func (s *Ship) Encode(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.writeString(s.name)
	ew.writeInt(s.productionCost)
	ew.writeInt(s.metalCost)
	ew.writeString(s.hull.Name)
	ew.writeInt(s.hull.Race.Index)
	ew.writeInt(len(s.components))
	for i, comp := range s.components {
		ew.writeString(comp.Name)
		ew.writeInt(s.hullPoints[i])
	}
	ew.writeInt(s.shield)
	ew.writeInt(s.armor)
	ew.writeInt(s.colonist)
	ew.writeInt(s.metal)

	mask := s.presenceMask()
	ew.writeByte(mask)
	if hasBit(mask, bitExperience) {
		ew.writeInt(s.experience)
	}
	if hasBit(mask, bitCulture) {
		ew.writeInt(s.culture)
	}
	if hasBit(mask, bitFlags) {
		ew.writeInt(int(s.specialFlags))
	}
	if hasBit(mask, bitTradeCoordinate) {
		ew.writeInt(s.tradeCoordinate.X)
		ew.writeInt(s.tradeCoordinate.Y)
	}

	if ew.err != nil {
		return fmt.Errorf("failed to encode ship %s: %w", s.name, ew.err)
	}
	return nil
}

func (s *Ship) presenceMask() byte {
	var mask byte
	if s.experience > 0 {
		mask |= 1 << bitExperience
	}
	if s.culture > 0 {
		mask |= 1 << bitCulture
	}
	if s.specialFlags != 0 {
		mask |= 1 << bitFlags
	}
	if s.tradeCoordinate != nil {
		mask |= 1 << bitTradeCoordinate
	}
	return mask
}

func hasBit(mask byte, bit int) bool {
	return mask&(1<<bit) != 0
}

// Decode reads a ship record written by Encode. Hull, race and components
// are resolved by name against the catalog; any unknown name or truncated
// record aborts with a CorruptSaveDataError.
func Decode(r io.Reader, cat *catalog.Catalog) (*Ship, error) {
	er := &errReader{r: r}

	s := &Ship{}
	s.name = er.readString()
	s.productionCost = er.readInt()
	s.metalCost = er.readInt()
	hullName := er.readString()
	raceIndex := er.readInt()
	count := er.readInt()
	if er.err != nil {
		return nil, shared.NewCorruptSaveDataError("truncated ship header", er.err)
	}
	if count < 0 || count > maxSavedComponents {
		return nil, shared.NewCorruptSaveDataError(fmt.Sprintf("component count %d out of range", count), nil)
	}

	hull, err := cat.HullByName(hullName, raceIndex)
	if err != nil {
		return nil, shared.NewCorruptSaveDataError("ship "+s.name, err)
	}
	if count > hull.MaxSlot {
		return nil, shared.NewCorruptSaveDataError(
			fmt.Sprintf("%d components do not fit %s", count, hull.Name), nil)
	}
	s.hull = hull

	s.components = make([]*catalog.Component, 0, count)
	s.hullPoints = make([]int, 0, count)
	for i := 0; i < count; i++ {
		compName := er.readString()
		hp := er.readInt()
		if er.err != nil {
			return nil, shared.NewCorruptSaveDataError(fmt.Sprintf("truncated slot %d", i), er.err)
		}
		comp, err := cat.ComponentByName(compName)
		if err != nil {
			return nil, shared.NewCorruptSaveDataError(fmt.Sprintf("ship %s slot %d", s.name, i), err)
		}
		s.components = append(s.components, comp)
		s.hullPoints = append(s.hullPoints, clamp(hp, 0, hull.SlotHull))
	}

	s.SetShield(er.readInt())
	s.SetArmor(er.readInt())
	s.SetColonist(er.readInt())
	s.SetMetal(er.readInt())

	mask := er.readByte()
	if hasBit(mask, bitExperience) {
		s.SetExperience(er.readInt())
	}
	if hasBit(mask, bitCulture) {
		s.SetCulture(er.readInt())
	}
	if hasBit(mask, bitFlags) {
		flags := Flag(er.readInt())
		if er.err == nil {
			if err := validateFlags(flags); err != nil {
				return nil, shared.NewCorruptSaveDataError("ship "+s.name, err)
			}
		}
		s.specialFlags = flags
	}
	if hasBit(mask, bitTradeCoordinate) {
		x := er.readInt()
		y := er.readInt()
		coord := shared.NewCoordinate(x, y)
		s.tradeCoordinate = &coord
	}
	if er.err != nil {
		return nil, shared.NewCorruptSaveDataError("truncated ship body", er.err)
	}

	return s, nil
}

// validateFlags rejects unknown bits and both merchant locations at once
func validateFlags(flags Flag) error {
	if flags&^knownFlags != 0 {
		return fmt.Errorf("unknown special flags 0x%x", int(flags&^knownFlags))
	}
	merchant := FlagMerchantLeftHomeworld | FlagMerchantLeftOpponentWorld
	if flags&merchant == merchant {
		return errors.New("both merchant location flags are set")
	}
	return nil
}

// errWriter keeps the first write error and skips everything after it
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(data any) {
	if ew.err != nil {
		return
	}
	ew.err = binary.Write(ew.w, binary.BigEndian, data)
}

func (ew *errWriter) writeInt(v int) {
	if ew.err != nil {
		return
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		ew.err = fmt.Errorf("value %d does not fit a 32-bit field", v)
		return
	}
	ew.write(int32(v))
}

func (ew *errWriter) writeByte(b byte) {
	ew.write(b)
}

func (ew *errWriter) writeString(str string) {
	ew.writeInt(len(str))
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, str)
}

// errReader keeps the first read error; reads after it return zero values
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) read(data any) {
	if er.err != nil {
		return
	}
	if err := binary.Read(er.r, binary.BigEndian, data); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		er.err = err
	}
}

func (er *errReader) readInt() int {
	var v int32
	er.read(&v)
	return int(v)
}

func (er *errReader) readByte() byte {
	var b byte
	er.read(&b)
	return b
}

func (er *errReader) readString() string {
	n := er.readInt()
	if er.err != nil {
		return ""
	}
	if n < 0 || n > maxSavedStringLen {
		er.err = fmt.Errorf("string length %d out of range", n)
		return ""
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(er.r, buf); err != nil {
		er.err = io.ErrUnexpectedEOF
		return ""
	}
	if !utf8.Valid(buf) {
		er.err = errors.New("string is not valid UTF-8")
		return ""
	}
	return string(buf)
}
