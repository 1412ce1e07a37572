package notify

import (
	"fmt"
	"time"
)

// WonAuctionMessage builds the "you won" email sent by the closing sweep.
// It carries the item title, the winning amount, the end time, and the
// auctioneer's contact plus the commission added to their balance.
func WonAuctionMessage(bidderName, itemTitle string, winningAmount float64, endTime time.Time, auctioneerEmail string, commission float64) (subject, text, html string) {
	subject = "Congratulations! You won an auction"
	text = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your bid was the highest and the item is now yours.\n\n"+
			"Item: %s\n"+
			"Winning bid: %.2f\n"+
			"Auction ended: %s\n\n"+
			"To arrange payment and collection, contact the auctioneer at %s.\n"+
			"Commission owed by the auctioneer for this sale: %.0f.\n\n"+
			"Thank you for participating.\n",
		bidderName, itemTitle, winningAmount, endTime.Format(time.RFC1123), auctioneerEmail, commission)
	html = fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Your bid was the <b>highest</b> and the item is now yours.</p>"+
			"<ul><li><b>Item:</b> %s</li><li><b>Winning bid:</b> %.2f</li><li><b>Auction ended:</b> %s</li></ul>"+
			"<p>To arrange payment and collection, contact the auctioneer at %s. "+
			"Commission owed by the auctioneer for this sale: %.0f.</p>",
		bidderName, itemTitle, winningAmount, endTime.Format(time.RFC1123), auctioneerEmail, commission)
	return subject, text, html
}

// SettlementMessage builds the email sent by the reconciliation sweep after
// a payment proof is settled.
func SettlementMessage(userName string, amountSettled, remainingUnpaid float64, settledAt time.Time) (subject, text, html string) {
	subject = "Your payment has been verified and settled"
	text = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your payment has been verified and settled.\n\n"+
			"Amount settled: %.2f\n"+
			"Remaining unpaid commission: %.2f\n"+
			"Date of settlement: %s\n",
		userName, amountSettled, remainingUnpaid, settledAt.Format("Mon Jan 2 2006"))
	html = fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Your payment has been <b>verified and settled</b>.</p>"+
			"<ul><li><b>Amount settled:</b> %.2f</li><li><b>Remaining unpaid:</b> %.2f</li><li><b>Date:</b> %s</li></ul>",
		userName, amountSettled, remainingUnpaid, settledAt.Format("Mon Jan 2 2006"))
	return subject, text, html
}

// OTPMessage builds the password-reset email.
func OTPMessage(userName, otp string, expiry time.Duration) (subject, text, html string) {
	subject = "Your password reset code"
	text = fmt.Sprintf(
		"Dear %s,\n\nYour one-time password reset code is %s. It expires in %s.\n",
		userName, otp, expiry)
	html = fmt.Sprintf(
		"<p>Dear %s,</p><p>Your one-time password reset code is <b>%s</b>. It expires in %s.</p>",
		userName, otp, expiry)
	return subject, text, html
}
