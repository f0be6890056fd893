package Resources

import (
	"math/bits"
)

// NewBitArray returns a BitArray holding at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of bits that are up.
func (u BitArray) Count() (c int) {
	for _, b := range u.bits {
		c += bits.OnesCount(b)
	}
	return
}
