package mcp

// Op enumerates the functions the service dispatches on. The set is closed:
// dispatch matches it exhaustively and anything else is rejected before a
// handler runs.
type Op string

const (
	OpListTasks  Op = "list_tasks"
	OpGetTask    Op = "get_task"
	OpCreateTask Op = "create_task"
	OpUpdateTask Op = "update_task"
	OpDeleteTask Op = "delete_task"
)

func Ops() []Op {
	return []Op{OpListTasks, OpGetTask, OpCreateTask, OpUpdateTask, OpDeleteTask}
}

// FunctionNames returns the supported function names in a stable order, for
// the server metadata payload.
func FunctionNames() []string {
	ops := Ops()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, string(op))
	}
	return names
}

func ParseOp(name string) (Op, bool) {
	switch Op(name) {
	case OpListTasks, OpGetTask, OpCreateTask, OpUpdateTask, OpDeleteTask:
		return Op(name), true
	default:
		return "", false
	}
}
