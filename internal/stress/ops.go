package stress

// OpKind identifies one kind of randomized operation.
type OpKind uint32

const (
	OpAdd OpKind = iota
	OpInsert
	OpInsertValues
	OpInsertMove
	OpRemoveAt
	OpRemove
	OpRemoveAll
	OpPop
	OpResize
	OpReserve
	OpShrink
	OpSort
	OpAssign
	OpClone
	OpMove
	OpClear
	OpProbe

	opKindCount
)

var opNames = [...]string{
	OpAdd:          "add",
	OpInsert:       "insert",
	OpInsertValues: "insert_values",
	OpInsertMove:   "insert_move",
	OpRemoveAt:     "remove_at",
	OpRemove:       "remove",
	OpRemoveAll:    "remove_all",
	OpPop:          "pop",
	OpResize:       "resize",
	OpReserve:      "reserve",
	OpShrink:       "shrink",
	OpSort:         "sort",
	OpAssign:       "assign",
	OpClone:        "clone",
	OpMove:         "move",
	OpClear:        "clear",
	OpProbe:        "probe",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// opWeights biases the workload towards growth so the container keeps a
// useful size; clear is rare.
var opWeights = [opKindCount]int{
	OpAdd:          20,
	OpInsert:       10,
	OpInsertValues: 6,
	OpInsertMove:   3,
	OpRemoveAt:     10,
	OpRemove:       6,
	OpRemoveAll:    2,
	OpPop:          4,
	OpResize:       3,
	OpReserve:      2,
	OpShrink:       2,
	OpSort:         2,
	OpAssign:       1,
	OpClone:        1,
	OpMove:         1,
	OpClear:        1,
	OpProbe:        6,
}

var opWeightTotal = func() int {
	total := 0
	for _, w := range opWeights {
		total += w
	}
	return total
}()

func pickOp(roll int) OpKind {
	for k, w := range opWeights {
		if roll < w {
			return OpKind(k)
		}
		roll -= w
	}
	return OpAdd
}
