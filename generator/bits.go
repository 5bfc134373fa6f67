package generator

import "fmt"

// FieldBits hands out presence bits over a sequence of 32-bit words, the
// way protoc lays out hasBits. Each plain scalar field takes one bit in
// declaration order; the parent mark takes the next free bit after all of
// them so it shares a word with the tail of the presence bits.
type FieldBits struct {
	next int
}

// Allocate reserves the next bit and reports the word index and mask it
// occupies.
func (b *FieldBits) Allocate() (word int, mask uint32) {
	word = b.next / 32
	mask = 1 << (b.next % 32)
	b.next++
	return word, mask
}

// ReserveParentBit allocates the ownership bit. Call it after every
// presence bit has been allocated.
func (b *FieldBits) ReserveParentBit() (word int, mask uint32) {
	return b.Allocate()
}

// WordsInUse reports how many bitField words the record struct needs.
func (b *FieldBits) WordsInUse() int {
	return (b.next + 31) / 32
}

// WordName names the struct field backing the given word.
func WordName(word int) string {
	return fmt.Sprintf("bitField%d_", word)
}

// MaskLiteral renders a bit mask the way generated code spells it.
func MaskLiteral(mask uint32) string {
	return fmt.Sprintf("0x%x", mask)
}
