package verify

const verificationSystemPrompt = `You are a skeptical fact-checker that ONLY outputs JSON. Verify claims against search results.

STATUS OPTIONS (use exactly one):
- "verified" = Claim is accurate and confirmed by multiple authoritative, current sources that match it exactly
- "inaccurate" = Claim has errors or is outdated (provide correct_value)
- "false" = Claim is wrong, contradicted, or unsupported by evidence

ALWAYS respond with ONLY a JSON object, no other text.`

// verificationUserPrompt interpolates claim text, verification focus, and
// the formatted evidence block.
const verificationUserPrompt = `CLAIM: %s

VERIFICATION FOCUS: %s

SOURCES:
%s

Respond with ONLY this JSON (no markdown, no explanation outside JSON):
{"status": "verified", "explanation": "why this status based on sources", "correct_value": null, "confidence": "high", "sources": [{"title": "source name", "url": "url", "relevance": "how it helped"}]}

Choose status: "verified" if sources confirm it, "inaccurate" if outdated/wrong numbers (include correct_value), "false" if no evidence or contradicted.

JSON response:`

// financialUserPrompt replaces the general template for financial claims.
// Market figures go stale fast, so it pushes the model toward the most
// recent source and toward inaccurate over verified when numbers drifted.
const financialUserPrompt = `CLAIM: %s

SOURCES:
%s

This is a FINANCIAL claim. Stock prices, market caps, and revenue figures change constantly, so:
- Prefer the most recent source when sources disagree
- A figure that was once correct but has moved is "inaccurate", not "verified"; put the current figure in correct_value and set is_outdated to true
- Only use "verified" if a current source states the same figure

Respond with ONLY this JSON (no markdown, no explanation outside JSON):
{"status": "verified", "explanation": "why this status based on sources", "correct_value": null, "confidence": "high", "is_outdated": false, "sources": [{"title": "source name", "url": "url", "relevance": "how it helped"}]}

JSON response:`

// noEvidenceBlock stands in for the evidence section when every search
// strategy came back empty.
const noEvidenceBlock = `No search results were found for this claim. Verify from your own knowledge only if you are certain; otherwise choose "false".`
