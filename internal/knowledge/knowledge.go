// Package knowledge holds the Tona Law facts the agent is allowed to state:
// firm profile, handled case types, and the FAQ table. All static.
package knowledge

import "strings"

// Firm profile, spoken-form address included for TTS.
const (
	FirmName      = "Tona Law"
	FirmAddress   = "152 Islip Ave Suite 18, Islip, NY 11751"
	FirmSpokenLoc = "Our office is located at one fifty two islip avenue in suite eighteen in Islip new york. If you'd like me to text you directions, please let me know."
	Founder       = "Attorney Thomas Tona"
)

var Attorneys = []string{"Thomas Tona", "Gary Axisa", "Raafat Toss", "Darby A. Singh"}

var PracticeAreas = []string{"personal injury", "no-fault collection"}

var CaseTypes = []string{
	"car accidents", "truck accident", "motorcycle accident", "bus accident",
	"DUI/DWI Victim Accident", "hit and run accidents", "uninsured motorist accident",
	"rideshare accident", "bicycle accident", "slip and fall accidents",
	"trip and fall accident", "bar and nightclub injuries", "construction accidents",
	"municipality accidents", "negligent security cases",
	"brain injury cases", "bone fractures", "wrongful death", "spinal cord injuries",
	"amputations", "severe burns",
}

// FAQ pairs a trigger phrase with its canned answer. Matching is ordered:
// the first trigger contained in the caller's utterance wins.
type FAQ struct {
	Trigger string
	Answer  string
}

var FAQs = []FAQ{
	{
		Trigger: "do i have a case",
		Answer:  "Whether your situation qualifies as a personal injury case depends on the details of your incident. If you've been injured due to someone else's negligence, you may have a valid claim. I can gather more information now to evaluate your case.",
	},
	{
		Trigger: "how much is my case worth",
		Answer:  "The value of your case depends on factors like medical expenses, lost wages, pain and suffering, and the extent of your injuries. I can discuss your situation in more detail to provide an initial estimate.",
	},
	{
		Trigger: "how much does it cost",
		Answer:  "We work on a contingency fee basis, meaning you pay nothing upfront. We only get paid if you win your case, with fees typically a percentage of your settlement or award. I can explain this further.",
	},
	{
		Trigger: "how long will my case take",
		Answer:  "The timeline for resolving a personal injury case varies based on its complexity, the extent of your injuries, and whether it settles or goes to trial. Simple cases may take months, while others could take a year or more. I'll keep you updated throughout the process.",
	},
	{
		Trigger: "what should i do next",
		Answer:  "Seek medical care for your injuries, document everything like photos, medical records, and receipts, and avoid speaking with insurance adjusters before I advise you. I can guide you on the next steps right now.",
	},
}

var locationTriggers = []string{"where are you located", "your address", "your office"}

// AnswerFAQ returns the answer for the first FAQ whose trigger appears in the
// utterance, or "" when nothing matches. Location questions get the spoken
// form of the address so TTS reads it naturally.
func AnswerFAQ(utterance string) string {
	lower := strings.ToLower(utterance)
	for _, trig := range locationTriggers {
		if strings.Contains(lower, trig) {
			return FirmSpokenLoc
		}
	}
	for _, f := range FAQs {
		if strings.Contains(lower, f.Trigger) {
			return f.Answer
		}
	}
	return ""
}
