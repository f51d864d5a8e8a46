// Package spectrum holds the per-edge, per-wavelength slot occupancy of a WDM
// topology.
//
// Every edge owns a fixed NumWavelengths × NumSlots boolean grid; true means
// the slot is occupied on that wavelength. Dimensions are chosen once, when
// the Table is created, and never change afterwards.
//
// Defaults:
//
//	DefaultWavelengths = 4
//	DefaultSlots       = 80
//
// Congestion levels (used for edge colouring by presentation layers), with
// capacity = NumWavelengths × NumSlots:
//
//	LevelFree  – no slot occupied
//	LevelLight – occupied < 50% of capacity
//	LevelHeavy – occupied < 100% of capacity
//	LevelFull  – every slot occupied
//
// Errors:
//
//	ErrUnknownEdge     – no grid exists for the edge key
//	ErrWavelengthRange – wavelength outside [0, NumWavelengths)
//	ErrSlotRange       – slot or range outside [0, NumSlots)
//
// The Table is not safe for concurrent mutation; the owning session
// serializes writers.
package spectrum
