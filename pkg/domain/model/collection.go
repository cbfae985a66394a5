package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/faultline/pkg/domain/interfaces"
	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// MoveMap remaps source attribute names to destination names during a
// merge. The lookup is a presence check: an attribute absent from the map
// keeps its own name.
type MoveMap map[types.Attribute]types.Attribute

// ErrorCollection is an ordered mapping from attribute name to failure
// entries, bound to one subject for its lifetime. It grows only through
// Add/AddDetail/Merge; insertion order is preserved and structurally
// identical entries are dropped at insertion time.
//
// The collection is not safe for concurrent mutation; callers serialize
// access the same way they serialize access to the owning subject.
type ErrorCollection struct {
	subject interfaces.Subject
	order   []types.Attribute
	entries map[types.Attribute][]FailureEntry
}

// New creates an empty collection bound to subject
func New(subject interfaces.Subject) *ErrorCollection {
	return &ErrorCollection{
		subject: subject,
		entries: make(map[types.Attribute][]FailureEntry),
	}
}

// IsRecognized reports whether the bound subject exposes the attribute.
// types.AttrBase is not consulted against the subject; it is always a
// legal destination, just not a "recognized" one.
func (x *ErrorCollection) IsRecognized(name types.Attribute) bool {
	return x.subject != nil && x.subject.HasAttribute(name)
}

// FullMessage renders message with the attribute label folded in, using
// the bound subject's formatting. Base-level messages are returned as-is
// since there is no attribute context to show.
func (x *ErrorCollection) FullMessage(attribute types.Attribute, message string) string {
	if attribute.IsBase() || x.subject == nil {
		return message
	}
	return x.subject.FullMessage(attribute, message)
}

// Add records a message-only failure entry for attribute unless an equal
// message is already recorded there.
func (x *ErrorCollection) Add(attribute types.Attribute, message string) {
	x.addMessage(attribute, message)
}

// AddDetail records a failure entry for attribute carrying an error code
// and options. The human message is derived from the code. Malformed
// details fail fast: an empty code or an options map using a reserved key
// is a programmer error.
func (x *ErrorCollection) AddDetail(attribute types.Attribute, code types.ErrorCode, options map[string]any) error {
	if code.IsZero() {
		return goerr.Wrap(ErrEmptyErrorCode, "cannot add detail",
			goerr.V(AttributeKey, attribute))
	}
	for _, key := range []string{optionKeyError, optionKeyMessage} {
		if _, ok := options[key]; ok {
			return goerr.Wrap(ErrReservedOptionKey, "cannot add detail",
				goerr.V(AttributeKey, attribute),
				goerr.V(ErrorCodeKey, code),
				goerr.V(OptionKeyKey, key))
		}
	}

	x.addDetail(attribute, code, copyOptions(options), messageFor(code))
	return nil
}

// Added reports whether an equal message-only entry is already recorded
// for attribute.
func (x *ErrorCollection) Added(attribute types.Attribute, message string) bool {
	for _, e := range x.entries[attribute] {
		if e.Message == message {
			return true
		}
	}
	return false
}

// AddedDetail reports whether a structurally equal detail entry is
// already recorded for attribute.
func (x *ErrorCollection) AddedDetail(attribute types.Attribute, code types.ErrorCode, options map[string]any) bool {
	for _, e := range x.entries[attribute] {
		if e.Detail != nil && e.Detail.Code == code && optionsEqual(e.Detail.Options, options) {
			return true
		}
	}
	return false
}

// Merge folds every entry of other into the receiver, remapping source
// attributes through move and deduplicating on the way in. Attributes are
// processed in other's insertion order, entries in theirs. Returns the
// receiver to support chaining.
//
// Entries lose their attribute context exactly once: when an entry is
// demoted to base (either because move targets base explicitly, or
// because the destination is not an attribute the receiving subject
// recognizes), the attribute label is folded into the message text using
// the source collection's formatting. A base-origin entry merged into
// base again is never re-wrapped.
func (x *ErrorCollection) Merge(other *ErrorCollection, move MoveMap) *ErrorCollection {
	if other == nil {
		return x
	}
	for _, from := range other.order {
		to := from
		if dst, ok := move[from]; ok {
			to = dst
		}
		for _, e := range other.entries[from] {
			x.mergeEntry(other, from, to, e)
		}
	}
	return x
}

func (x *ErrorCollection) mergeEntry(src *ErrorCollection, from, to types.Attribute, e FailureEntry) {
	switch {
	case !from.IsBase() && to.IsBase():
		// Explicit demotion: the attribute name must be folded into the
		// message now, since base carries no attribute context.
		x.addMessage(types.AttrBase, src.FullMessage(from, e.Message))
	case to.IsBase() || x.IsRecognized(to):
		if e.HasDetail() {
			opts := copyOptions(e.Detail.Options)
			opts[optionKeyMessage] = e.Message
			x.addDetail(to, e.Detail.Code, opts, e.Message)
		} else {
			x.addMessage(to, e.Message)
		}
	default:
		// The destination is not an attribute the receiving subject
		// knows about: demote to base under the destination's label.
		x.addMessage(types.AttrBase, src.FullMessage(to, e.Message))
	}
}

// addMessage appends a message-only entry, deduplicated by message text.
func (x *ErrorCollection) addMessage(attribute types.Attribute, message string) {
	if x.Added(attribute, message) {
		return
	}
	x.append(attribute, FailureEntry{Message: message})
}

// addDetail appends a detail entry, deduplicated by (code, options).
// Callers hand over ownership of options.
func (x *ErrorCollection) addDetail(attribute types.Attribute, code types.ErrorCode, options map[string]any, message string) {
	if x.AddedDetail(attribute, code, options) {
		return
	}
	x.append(attribute, FailureEntry{
		Message: message,
		Detail:  &Detail{Code: code, Options: options},
	})
}

func (x *ErrorCollection) append(attribute types.Attribute, e FailureEntry) {
	if _, ok := x.entries[attribute]; !ok {
		x.order = append(x.order, attribute)
	}
	x.entries[attribute] = append(x.entries[attribute], e)
}

// Attributes returns the attribute names in insertion order
func (x *ErrorCollection) Attributes() []types.Attribute {
	attrs := make([]types.Attribute, len(x.order))
	copy(attrs, x.order)
	return attrs
}

// Entries returns the failure entries recorded for attribute in
// insertion order.
func (x *ErrorCollection) Entries(attribute types.Attribute) []FailureEntry {
	src := x.entries[attribute]
	entries := make([]FailureEntry, len(src))
	copy(entries, src)
	return entries
}

// MessagesFor returns the messages recorded for attribute
func (x *ErrorCollection) MessagesFor(attribute types.Attribute) []string {
	var messages []string
	for _, e := range x.entries[attribute] {
		messages = append(messages, e.Message)
	}
	return messages
}

// Messages returns all messages keyed by attribute
func (x *ErrorCollection) Messages() map[types.Attribute][]string {
	messages := make(map[types.Attribute][]string, len(x.order))
	for _, attr := range x.order {
		messages[attr] = x.MessagesFor(attr)
	}
	return messages
}

// Details returns the details recorded for each attribute, skipping
// message-only entries.
func (x *ErrorCollection) Details() map[types.Attribute][]Detail {
	details := make(map[types.Attribute][]Detail)
	for _, attr := range x.order {
		for _, e := range x.entries[attr] {
			if e.Detail != nil {
				details[attr] = append(details[attr], *e.Detail)
			}
		}
	}
	return details
}

// FullMessages renders every entry with its attribute label folded in,
// in insertion order.
func (x *ErrorCollection) FullMessages() []string {
	var messages []string
	for _, attr := range x.order {
		for _, e := range x.entries[attr] {
			messages = append(messages, x.FullMessage(attr, e.Message))
		}
	}
	return messages
}

// FullMessagesFor renders the entries recorded for attribute with its
// label folded in.
func (x *ErrorCollection) FullMessagesFor(attribute types.Attribute) []string {
	var messages []string
	for _, e := range x.entries[attribute] {
		messages = append(messages, x.FullMessage(attribute, e.Message))
	}
	return messages
}

// IsEmpty reports whether the collection holds no entries
func (x *ErrorCollection) IsEmpty() bool {
	return len(x.order) == 0
}

// Size returns the total number of entries across all attributes
func (x *ErrorCollection) Size() int {
	var n int
	for _, attr := range x.order {
		n += len(x.entries[attr])
	}
	return n
}
