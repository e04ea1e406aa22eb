package render

import (
	"strings"
	"time"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

const (
	// TimestampLayout formats server times and transfer posting times.
	TimestampLayout = "20060102150405"
	// DateLayout formats posted dates and statement ranges.
	DateLayout = "20060102"
)

const okStatus = "<STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>"

var sgml = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces the characters SGML treats as markup.
func Escape(s string) string {
	return sgml.Replace(s)
}

func responseTag(transfer bool) string {
	if transfer {
		return "INTRATRNRS"
	}
	return "STMTTRNRS"
}

// OFXHeader opens the document: the signon response followed by the
// statement (or, in transfer mode, intrabank transfer) response wrapper.
func OFXHeader(b *strings.Builder, now time.Time, language string, transfer bool) {
	ts := now.Format(TimestampLayout)
	b.WriteString("<OFX>\n")
	b.WriteString("  <SIGNONMSGSRSV1>\n")
	b.WriteString("    <SONRS>\n")
	b.WriteString("      " + okStatus + "\n")
	b.WriteString("      <DTSERVER>" + ts + "</DTSERVER>\n")
	b.WriteString("      <LANGUAGE>" + Escape(language) + "</LANGUAGE>\n")
	b.WriteString("    </SONRS>\n")
	b.WriteString("  </SIGNONMSGSRSV1>\n")
	b.WriteString("  <BANKMSGSRSV1><" + responseTag(transfer) + ">\n")
	b.WriteString("    <TRNUID>" + ts + "</TRNUID>\n")
	b.WriteString("    " + okStatus + "\n")
}

// OFXAccountStart opens a statement for acct covering start through end.
func OFXAccountStart(b *strings.Builder, currency string, acct model.Account, start, end time.Time) {
	b.WriteString("    <STMTRS>\n")
	b.WriteString("      <CURDEF>" + Escape(currency) + "</CURDEF>\n")
	writeBankAccount(b, "      ", "BANKACCTFROM", acct.ID, acct.Name, acct.Type)
	b.WriteString("      <BANKTRANLIST>\n")
	b.WriteString("        <DTSTART>" + start.Format(DateLayout) + "</DTSTART>\n")
	b.WriteString("        <DTEND>" + end.Format(DateLayout) + "</DTEND>\n")
}

// OFXTransaction writes one statement transaction. CHECKNUM falls back to
// the transaction id.
func OFXTransaction(b *strings.Builder, td model.TransactionData) {
	checkNum := td.CheckNum
	if checkNum == "" {
		checkNum = td.ID
	}
	b.WriteString("        <STMTTRN>\n")
	b.WriteString("          <TRNTYPE>" + Escape(td.Type) + "</TRNTYPE>\n")
	b.WriteString("          <DTPOSTED>" + td.Date.Format(DateLayout) + "</DTPOSTED>\n")
	b.WriteString("          <TRNAMT>" + td.Amount.StringFixed(2) + "</TRNAMT>\n")
	b.WriteString("          <FITID>" + Escape(td.ID) + "</FITID>\n")
	b.WriteString("          <CHECKNUM>" + Escape(checkNum) + "</CHECKNUM>\n")
	b.WriteString("          <NAME>" + Escape(td.Payee) + "</NAME>\n")
	b.WriteString("          <MEMO>" + Escape(td.Desc) + "</MEMO>\n")
	b.WriteString("        </STMTTRN>\n")
}

// OFXAccountEnd closes a statement opened by OFXAccountStart.
func OFXAccountEnd(b *strings.Builder, asOf time.Time) {
	b.WriteString("      </BANKTRANLIST>\n")
	b.WriteString("      <LEDGERBAL>\n")
	b.WriteString("        <BALAMT>0</BALAMT>\n")
	b.WriteString("        <DTASOF>" + asOf.Format(TimestampLayout) + "</DTASOF>\n")
	b.WriteString("      </LEDGERBAL>\n")
	b.WriteString("    </STMTRS>\n")
}

// OFXTransfer writes one intrabank transfer from acct to the split account
// of td.
func OFXTransfer(b *strings.Builder, currency string, acct model.Account, td model.TransactionData, splitType model.AccountType) {
	b.WriteString("    <INTRARS>\n")
	b.WriteString("      <CURDEF>" + Escape(currency) + "</CURDEF>\n")
	b.WriteString("      <SRVRTID>" + Escape(td.ID) + "</SRVRTID>\n")
	b.WriteString("      <XFERINFO>\n")
	writeBankAccount(b, "        ", "BANKACCTFROM", acct.ID, acct.Name, acct.Type)
	writeBankAccount(b, "        ", "BANKACCTTO", td.SplitAccountID, td.SplitAccount, splitType)
	b.WriteString("        <TRNAMT>" + td.Amount.StringFixed(2) + "</TRNAMT>\n")
	b.WriteString("      </XFERINFO>\n")
	b.WriteString("      <DTPOSTED>" + td.Date.Format(DateLayout) + "</DTPOSTED>\n")
	b.WriteString("    </INTRARS>\n")
}

// OFXFooter closes the document opened by OFXHeader.
func OFXFooter(b *strings.Builder, transfer bool) {
	b.WriteString("  </" + responseTag(transfer) + "></BANKMSGSRSV1>\n")
	b.WriteString("</OFX>\n")
}

func writeBankAccount(b *strings.Builder, indent, tag, bankID, name string, typ model.AccountType) {
	b.WriteString(indent + "<" + tag + ">\n")
	b.WriteString(indent + "  <BANKID>" + Escape(bankID) + "</BANKID>\n")
	b.WriteString(indent + "  <ACCTID>" + Escape(name) + "</ACCTID>\n")
	b.WriteString(indent + "  <ACCTTYPE>" + string(typ) + "</ACCTTYPE>\n")
	b.WriteString(indent + "</" + tag + ">\n")
}
