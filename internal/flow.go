package internal

type flowKind int

const (
	flowNormal flowKind = iota
	flowReturn
	flowBreak
)

// flow is the outcome of executing a statement. A non-normal flow stops the
// enclosing block and travels up until a loop takes the break or a call
// takes the return.
type flow struct {
	kind  flowKind
	value value
}

var normalFlow = flow{kind: flowNormal}

func returnFlow(v value) flow {
	return flow{kind: flowReturn, value: v}
}

func breakFlow() flow {
	return flow{kind: flowBreak}
}

func (f flow) isNormal() bool {
	return f.kind == flowNormal
}
