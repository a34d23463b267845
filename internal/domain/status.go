package domain

// LabelUnknownStatus: ключ перевода для кодов статуса вне справочника.
const LabelUnknownStatus = "orders.unknown_status"

// statusDictionary хранит закрытый набор кодов статуса и их ключи перевода.
// Порядок codes фиксирован и используется для выпадающих списков в UI.
type statusDictionary[S ~int] struct {
	codes    []S
	labels   map[S]string
	fallback string
}

func newStatusDictionary[S ~int](fallback string, entries ...statusEntry[S]) statusDictionary[S] {
	d := statusDictionary[S]{
		codes:    make([]S, 0, len(entries)),
		labels:   make(map[S]string, len(entries)),
		fallback: fallback,
	}
	for _, e := range entries {
		if _, dup := d.labels[e.code]; dup {
			panic("duplicate status code in dictionary")
		}
		d.codes = append(d.codes, e.code)
		d.labels[e.code] = e.label
	}
	return d
}

type statusEntry[S ~int] struct {
	code  S
	label string
}

func (d statusDictionary[S]) label(code S) string {
	if l, ok := d.labels[code]; ok {
		return l
	}
	return d.fallback
}

func (d statusDictionary[S]) valid(code S) bool {
	_, ok := d.labels[code]
	return ok
}

func (d statusDictionary[S]) statuses() []S {
	out := make([]S, len(d.codes))
	copy(out, d.codes)
	return out
}

func (d statusDictionary[S]) labelMap() map[S]string {
	out := make(map[S]string, len(d.labels))
	for k, v := range d.labels {
		out[k] = v
	}
	return out
}
