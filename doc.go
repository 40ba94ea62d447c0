/*
Package taggedbase64 implements a user-oriented text format for binary values
such as transaction IDs, addresses and hashes. A tagged base64 string is a
short mnemonic tag, the separator ~, and the URL-safe base64 encoding (no
padding) of a checksum byte followed by the payload:

	TX~0WZvb2Jhcg
	LA~5zMxNDE1
	~AA

Every character of the output belongs to the URL-safe base64 alphabet or is
the separator itself, so the strings can be displayed, copied and embedded in
URLs without quoting or escape sequences. They also survive consumers that
coerce number-looking strings into floats, which silently corrupts large
binary identifiers rendered as decimal.

The tag carries no meaning for the codec itself. It is a usage hint that lets
developers and users see at a glance whether a value is a transaction ID, a
ledger address and so on. Both the tag and the payload may be empty.

The checksum byte is a CRC-8 computed over the tag bytes followed by the
payload bytes in a single running register, so truncations, transcription
errors and tag swaps are caught at parse time. Parsing is all-or-nothing:
a value with a bad checksum is rejected, never partially returned.

All functions in this package are pure. A TaggedBase64 instance is owned by
one caller at a time; concurrent mutation of a single instance requires
external serialization, while distinct instances are independent.
*/
package taggedbase64
