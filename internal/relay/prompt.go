package relay

import "strings"

// PromptVersion identifies the extraction prompt revision. Bump it when the
// template wording changes so runs stay comparable across deployments.
const PromptVersion = "2024-11"

// NotFoundSentinel is the value the model is instructed to place in "data"
// when a field cannot be located in the document.
const NotFoundSentinel = "NOT FOUND"

// ExtractionFields is the closed set of fields the model is asked to
// extract, in the order they appear in the prompt schema.
var ExtractionFields = []string{
	"paymentBreakdown",
	"currentBalance",
	"fees",
	"signatureRequired",
	"remittanceTo",
	"mailingAddress",
	"checkPayableTo",
	"clientName",
	"referenceNumber",
	"additionalInstructions",
}

// BuildCouponPrompt returns the extraction prompt for payment coupon and
// remittance slip documents. The template is the single canonical version;
// treat it as configuration data, not per-deployment copy.
func BuildCouponPrompt() string {
	schema := make([]string, 0, len(ExtractionFields))
	for _, f := range ExtractionFields {
		schema = append(schema, `  "`+f+`": { "data": "", "confidence": "", "source": "", "notes": "", "location": "" }`)
	}

	return `You are a document data extraction assistant. Analyze the provided payment coupon or remittance slip and extract the fields below.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object, following this exact schema:

{
` + strings.Join(schema, ",\n") + `
}

For each field:
- "data" is the extracted value. If the field is not present in the document, use exactly "` + NotFoundSentinel + `".
- "confidence" is one of "high", "medium", or "low". Use "high" when the value is stated explicitly and unambiguously, "medium" when it is inferred from surrounding context, and "low" when you are uncertain.
- "source" is the section or label of the document the value came from.
- "notes" holds any caveats about the extraction, or an empty string.
- "location" describes where on the page the value appears (e.g. "top right", "detachable stub").

Field rules:
- "paymentBreakdown" lists each line item amount with its label (principal, interest, escrow, and similar).
- "currentBalance" is the total amount currently due.
- "fees" covers late fees, service charges, and any other penalty amounts.
- "signatureRequired" is "yes" or "no" depending on whether the document asks for a signature.
- "checkPayableTo" and "remittanceTo": if not explicitly stated, fall back to the company name shown on the letterhead and note the fallback in "notes".
- "referenceNumber" covers account, loan, or invoice numbers used to match the payment.

Do not invent values. Extract only what the document supports.`
}
