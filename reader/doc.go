// Package reader loads raw tag streams from files and readers.
//
// Drawing files predate UTF-8: text is stored in the codepage named by the
// $DWGCODEPAGE header variable. The reader sniffs that variable, decodes
// the byte stream accordingly, and lexes the result into tags. A lenient
// mode skips malformed tag pairs instead of failing, reporting them
// through an optional structured logger.
package reader
