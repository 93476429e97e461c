package orders

import "context"

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byKind map[Kind]actionFunc
}

func newActionFactory(onCreated, onCanceled, onFailed actionFunc) *actionFactory {
	return &actionFactory{
		byKind: map[Kind]actionFunc{
			KindCreated: onCreated,
			KindCancel:  onCanceled,
			KindFail:    onFailed,
		},
	}
}

func (f *actionFactory) get(e Event) (actionFunc, bool) {
	fn, ok := f.byKind[e.Kind()]
	return fn, ok && fn != nil
}
