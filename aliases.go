package safeint

// Checked versions of the fixed-width integer kinds. The pointer-width
// variant is Uptr; Go has no signed pointer-width kind, so there is no
// signed counterpart.
type (
	I8  = Int[int8]
	I16 = Int[int16]
	I32 = Int[int32]
	I64 = Int[int64]

	U8  = Int[uint8]
	U16 = Int[uint16]
	U32 = Int[uint32]
	U64 = Int[uint64]

	Uptr = Int[uintptr]
)
