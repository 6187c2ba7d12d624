package models

type QuestionKind string

const (
	KindChoiceSingle QuestionKind = "choice_single"
	KindChoiceMulti  QuestionKind = "choice_multi"
	KindSignOrReject QuestionKind = "sign_or_reject"
)

type WalletAction string

const (
	ActionSign   WalletAction = "sign"
	ActionReject WalletAction = "reject"
)

type WalletKind string

const (
	WalletMetaMask WalletKind = "metamask"
	WalletSafe     WalletKind = "safeWallet"
	WalletTrezor   WalletKind = "trezor"
)

type QuestionStatus string

const (
	StatusCorrect    QuestionStatus = "correct"
	StatusIncorrect  QuestionStatus = "incorrect"
	StatusCurrent    QuestionStatus = "current"
	StatusUnanswered QuestionStatus = "unanswered"
)
