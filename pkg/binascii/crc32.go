package binascii

import "hash/crc32"

// checksum continues an IEEE CRC-32 from seed over data. crc32.Update
// handles the pre/post inversion, so feeding a prior result back in as the
// seed is equivalent to hashing the concatenated input in one call.
func checksum(seed uint32, data []byte) uint32 {
	return crc32.Update(seed, crc32.IEEETable, data)
}
