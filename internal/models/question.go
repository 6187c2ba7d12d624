package models

// Option is one selectable answer of a choice question.
type Option struct {
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

// DecodedParam is a human-readable rendering of one calldata argument.
type DecodedParam struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// MultisigInfo carries signer metadata for Safe-style wallet scenarios.
type MultisigInfo struct {
	Threshold     int `yaml:"threshold" json:"threshold"`
	Confirmations int `yaml:"confirmations" json:"confirmations"`
}

// TransactionDetails describes a simulated transaction shown in the wallet
// dialog. It is display and grading data only; nothing here is ever executed.
type TransactionDetails struct {
	From            string         `yaml:"from" json:"from"`
	To              string         `yaml:"to" json:"to"`
	Amount          string         `yaml:"amount" json:"amount"`
	FeeDisplay      string         `yaml:"feeDisplay" json:"feeDisplay"`
	FeeNative       string         `yaml:"feeNative" json:"feeNative"`
	Function        string         `yaml:"function" json:"function"`
	CallData        []string       `yaml:"callData" json:"callData"`
	DecodedParams   []DecodedParam `yaml:"decodedParams,omitempty" json:"decodedParams,omitempty"`
	TargetContracts []string       `yaml:"targetContracts,omitempty" json:"targetContracts,omitempty"`
	UpgradeAccount  string         `yaml:"upgradeAccount,omitempty" json:"upgradeAccount,omitempty"`
	Multisig        *MultisigInfo  `yaml:"multisig,omitempty" json:"multisig,omitempty"`
}

// SignatureDetails describes a simulated off-chain signature request. The raw
// message may embed an EIP-712 hash triple for nested-signer scenarios.
type SignatureDetails struct {
	Origin       string `yaml:"origin" json:"origin"`
	Message      string `yaml:"message" json:"message"`
	DomainHash   string `yaml:"domainHash,omitempty" json:"domainHash,omitempty"`
	MessageHash  string `yaml:"messageHash,omitempty" json:"messageHash,omitempty"`
	CombinedHash string `yaml:"combinedHash,omitempty" json:"combinedHash,omitempty"`
}

// Question is one quiz item. The Kind field selects which of the optional
// field groups is meaningful: Options/CorrectAnswers for the choice kinds,
// the wallet fields for sign-or-reject. Questions are immutable after load.
type Question struct {
	ID      int          `yaml:"id" json:"id"`
	Kind    QuestionKind `yaml:"kind" json:"kind"`
	Prompt  string       `yaml:"prompt" json:"prompt"`
	Context string       `yaml:"context,omitempty" json:"context,omitempty"`

	Options        []Option `yaml:"options,omitempty" json:"options,omitempty"`
	CorrectAnswers []string `yaml:"correctAnswers,omitempty" json:"correctAnswers,omitempty"`

	ExpectedAction         WalletAction        `yaml:"expectedAction,omitempty" json:"expectedAction,omitempty"`
	SimulatedSiteKind      string              `yaml:"simulatedSiteKind,omitempty" json:"simulatedSiteKind,omitempty"`
	InteractionLabel       string              `yaml:"interactionLabel,omitempty" json:"interactionLabel,omitempty"`
	WalletKind             WalletKind          `yaml:"walletKind,omitempty" json:"walletKind,omitempty"`
	Transaction            *TransactionDetails `yaml:"transaction,omitempty" json:"transaction,omitempty"`
	Signature              *SignatureDetails   `yaml:"signature,omitempty" json:"signature,omitempty"`
	WrongAnswerExplanation string              `yaml:"wrongAnswerExplanation,omitempty" json:"wrongAnswerExplanation,omitempty"`

	Feedback []string `yaml:"feedback" json:"feedback"`
}

// IsChoice reports whether the question is answered by selecting options.
func (q *Question) IsChoice() bool {
	return q.Kind == KindChoiceSingle || q.Kind == KindChoiceMulti
}

// HasOption reports whether id names one of the question's options.
func (q *Question) HasOption(id string) bool {
	for _, opt := range q.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}
