// Package zxid implements transaction ids. A zxid orders every change made to
// the namespace: the high 32 bits hold the epoch and the low 32 bits a counter
// within the epoch.
package zxid

import "fmt"

type ZXID int64

const counterMask = 0xFFFFFFFF

func NewZXID(epoch int32, counter int32) ZXID {
	// uint32 keeps a negative counter from sign extending into the epoch.
	return ZXID(int64(epoch)<<32 | int64(uint32(counter)))
}

func (z ZXID) GetEpoch() int32 {
	return int32(z >> 32)
}

func (z ZXID) GetCounter() int32 {
	return int32(z & counterMask)
}

// Next returns the zxid of the next transaction in the same epoch.
func (z ZXID) Next() ZXID {
	return NewZXID(z.GetEpoch(), z.GetCounter()+1)
}

// NextEpoch returns the first zxid of the epoch after z's. A server that
// restarts from its log continues from here so it never reuses a zxid.
func (z ZXID) NextEpoch() ZXID {
	return NewZXID(z.GetEpoch()+1, 0)
}

func (z ZXID) String() string {
	return fmt.Sprintf("0x%x(%d:%d)", int64(z), z.GetEpoch(), z.GetCounter())
}
