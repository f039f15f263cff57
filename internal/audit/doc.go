// Package audit appends operation records to a local JSONL log.
//
// The log lives at $SALTPASS_HOME/audit.jsonl and records catalog and
// generation operations (which identifier, which algorithm, when) so an
// operator can reconstruct what the tool did. It deliberately records no
// secret material: not the master secret, not derived passwords, not
// anything computed from them.
//
// Logging is best effort. A failure to write the audit log never fails
// the operation being logged.
package audit
