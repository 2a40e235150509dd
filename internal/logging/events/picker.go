package events

import "github.com/atomicstack/datepop/internal/logging"

type PickerTracer struct{}

type PointerTracer struct{}

type rejectReason string

const (
	RejectUnparseable rejectReason = "unparseable"
	RejectOutOfRange  rejectReason = "out-of-range"
	RejectStrictCell  rejectReason = "strict-cell"
)

var (
	Picker  = PickerTracer{}
	Pointer = PointerTracer{}
)

func (PickerTracer) Open(text string) {
	logging.Trace("picker.open", map[string]interface{}{"text": text})
}

func (PickerTracer) Close(text string) {
	logging.Trace("picker.close", map[string]interface{}{"text": text})
}

func (PickerTracer) Edit(text string, valid bool) {
	logging.Trace("picker.edit", map[string]interface{}{"text": text, "valid": valid})
}

func (PickerTracer) Commit(date, source string) {
	logging.Trace("picker.commit", map[string]interface{}{"date": date, "source": source})
}

func (PickerTracer) Reject(text string, reason rejectReason) {
	logging.Trace("picker.reject", map[string]interface{}{"text": text, "reason": string(reason)})
}

func (PickerTracer) Revert(from, to string) {
	logging.Trace("picker.revert", map[string]interface{}{"from": from, "to": to})
}

func (PickerTracer) Navigate(action string, year, month int) {
	logging.Trace("picker.navigate", map[string]interface{}{"action": action, "year": year, "month": month})
}

func (PickerTracer) CellClick(date, cellType string, outsideRange bool) {
	logging.Trace("picker.cell", map[string]interface{}{"date": date, "type": cellType, "outsideRange": outsideRange})
}

func (PickerTracer) OutsideClick(x, y int) {
	logging.Trace("picker.outside-click", map[string]interface{}{"x": x, "y": y})
}

func (PointerTracer) Add(id, live int) {
	logging.Trace("pointer.add", map[string]interface{}{"id": id, "live": live})
}

func (PointerTracer) Release(id, live int) {
	logging.Trace("pointer.release", map[string]interface{}{"id": id, "live": live})
}
