package format

import "strings"

// CharacterLimit is the approximate output budget for markdown responses.
// JSON responses are never truncated.
const CharacterLimit = 25000

// truncationNotice tells the caller the response was clipped and how to
// get the rest.
const truncationNotice = "_Output truncated at the 25,000 character budget. " +
	"Narrow your filters, paginate with `cursor`/`skip`, or request JSON._"

// clampParts joins parts with sep, dropping whole trailing parts until the
// result fits the budget. Truncation never cuts inside a part, so a table
// row or trip section is either fully present or fully absent.
func clampParts(parts []string, sep string) string {
	text := strings.Join(parts, sep)
	if len(text) <= CharacterLimit {
		return text
	}

	budget := CharacterLimit - len(sep) - len(truncationNotice)
	kept := parts
	for len(kept) > 0 {
		kept = kept[:len(kept)-1]
		text = strings.Join(kept, sep)
		if len(text) <= budget {
			break
		}
	}

	if text == "" {
		return truncationNotice
	}
	return text + sep + truncationNotice
}
