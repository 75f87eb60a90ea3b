package forth

// Variable is one slot in the variable store. A nil Value means the variable
// has never been assigned.
type Variable struct {
	Name  string
	Value Literal
}

// variables is the 0-indexed variable store; a Pointer's Address is an index
// into slots. Defining a name again appends a new slot that shadows the
// prior one for name lookups, while older slots remain addressable.
type variables struct {
	slots []Variable
	index map[string]int
}

func (vars variables) lookup(name string) (addr int, defined bool) {
	addr, defined = vars.index[name]
	return addr, defined
}

func (vars *variables) define(name string) (addr int) {
	if vars.index == nil {
		vars.index = make(map[string]int)
	}
	addr = len(vars.slots)
	vars.slots = append(vars.slots, Variable{Name: name})
	vars.index[name] = addr
	return addr
}

func (vars variables) slot(addr int) (*Variable, error) {
	if addr < 0 || addr >= len(vars.slots) {
		return nil, addressError(addr)
	}
	return &vars.slots[addr], nil
}

func (vars variables) last() (*Variable, error) {
	if len(vars.slots) == 0 {
		return nil, ErrVariableNotExist
	}
	return &vars.slots[len(vars.slots)-1], nil
}

// load reads the cell named by ptr: an array value is indexed by the
// pointer's offset, while a scalar only has offset 0, reading as Integer(0)
// until first assigned.
func (vars variables) load(ptr Pointer) (Literal, error) {
	v, err := vars.slot(ptr.Address)
	if err != nil {
		return nil, err
	}
	if arr, ok := v.Value.(*Array); ok {
		return arr.Get(ptr.Offset)
	}
	if ptr.Offset != 0 {
		return nil, IndexError{ptr.Offset, 1}
	}
	if v.Value == nil {
		return Integer(0), nil
	}
	return v.Value, nil
}

// stor writes the cell named by ptr, following the same addressing as load.
func (vars variables) stor(ptr Pointer, val Literal) error {
	v, err := vars.slot(ptr.Address)
	if err != nil {
		return err
	}
	if arr, ok := v.Value.(*Array); ok {
		return arr.Set(ptr.Offset, val)
	}
	if ptr.Offset != 0 {
		return IndexError{ptr.Offset, 1}
	}
	v.Value = val
	return nil
}

func (vars variables) dump() []Variable {
	dump := make([]Variable, len(vars.slots))
	for i, v := range vars.slots {
		dump[i] = Variable{v.Name, cloneLiteral(v.Value)}
	}
	return dump
}
