package cli

import (
	"fmt"
	"strings"

	"github.com/ad/go-wallet-quiz/internal/models"
	"github.com/ad/go-wallet-quiz/internal/quiz"
)

const callDataPreview = 26

// shortenAddress elides the middle of a hex address for display.
func shortenAddress(addr string) string {
	if len(addr) <= 14 {
		return addr
	}
	return addr[:8] + "..." + addr[len(addr)-6:]
}

func elideHex(data string) string {
	if len(data) <= callDataPreview {
		return data
	}
	return data[:callDataPreview] + "..."
}

// formatTransaction renders the simulated wallet dialog for a transaction
// request. The output is deterministic so it can be asserted in tests.
func formatTransaction(tx *models.TransactionDetails, wallet models.WalletKind) string {
	var b strings.Builder
	fmt.Fprintf(&b, "┌─ %s confirmation ─\n", wallet)
	fmt.Fprintf(&b, "│ From:   %s\n", shortenAddress(tx.From))
	fmt.Fprintf(&b, "│ To:     %s\n", shortenAddress(tx.To))
	fmt.Fprintf(&b, "│ Amount: %s\n", tx.Amount)
	fmt.Fprintf(&b, "│ Fee:    %s (%s)\n", tx.FeeDisplay, tx.FeeNative)
	fmt.Fprintf(&b, "│ Calls:  %s\n", tx.Function)
	for i, data := range tx.CallData {
		target := ""
		if i < len(tx.TargetContracts) {
			target = " -> " + shortenAddress(tx.TargetContracts[i])
		}
		fmt.Fprintf(&b, "│   data[%d]: %s%s\n", i, elideHex(data), target)
	}
	for _, p := range tx.DecodedParams {
		fmt.Fprintf(&b, "│   %s = %s\n", p.Name, p.Value)
	}
	if tx.UpgradeAccount != "" {
		fmt.Fprintf(&b, "│ Upgrade account to: %s\n", shortenAddress(tx.UpgradeAccount))
	}
	if tx.Multisig != nil {
		fmt.Fprintf(&b, "│ Multisig: %d of %d confirmations\n", tx.Multisig.Confirmations, tx.Multisig.Threshold)
	}
	b.WriteString("└─")
	return b.String()
}

// formatSignature renders the simulated wallet dialog for an off-chain
// signature request.
func formatSignature(sig *models.SignatureDetails, wallet models.WalletKind) string {
	var b strings.Builder
	fmt.Fprintf(&b, "┌─ %s signature request ─\n", wallet)
	fmt.Fprintf(&b, "│ Origin: %s\n", sig.Origin)
	b.WriteString("│ Message:\n")
	for _, line := range strings.Split(strings.TrimRight(sig.Message, "\n"), "\n") {
		fmt.Fprintf(&b, "│   %s\n", line)
	}
	if sig.DomainHash != "" {
		fmt.Fprintf(&b, "│ Domain hash:   %s\n", sig.DomainHash)
	}
	if sig.MessageHash != "" {
		fmt.Fprintf(&b, "│ Message hash:  %s\n", sig.MessageHash)
	}
	if sig.CombinedHash != "" {
		fmt.Fprintf(&b, "│ Combined hash: %s\n", sig.CombinedHash)
	}
	b.WriteString("└─")
	return b.String()
}

// formatProgress renders the per-question status strip plus the completion
// percentage, one symbol per question.
func formatProgress(p quiz.ProgressProps) string {
	var b strings.Builder
	b.WriteString("[")
	for _, entry := range p.PerQuestionStatus {
		switch entry.Status {
		case models.StatusCorrect:
			b.WriteString("+")
		case models.StatusIncorrect:
			b.WriteString("x")
		case models.StatusCurrent:
			b.WriteString(">")
		default:
			b.WriteString(".")
		}
	}
	fmt.Fprintf(&b, "] %d/%d (%d%%)", p.CurrentQuestion, p.TotalQuestions, p.PercentComplete)
	return b.String()
}

func formatVerdict(correct bool) string {
	if correct {
		return "Correct!"
	}
	return "Incorrect."
}
