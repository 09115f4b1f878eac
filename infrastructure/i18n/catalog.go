package i18n

// Message keys used by the presentation layer.
const (
	KeyTitle                = "title"
	KeySubtitle             = "subtitle"
	KeyCorpsMessage         = "corpsMessage"
	KeyJudgesConfig         = "judgesConfig"
	KeyNumJudges            = "numJudges"
	KeyJudge                = "judge"
	KeyCreativity           = "creativity"
	KeyQuality              = "quality"
	KeySpecialCriteria      = "specialCriteria"
	KeyCriteria             = "criteria"
	KeyHalfImpact           = "halfImpact"
	KeyFullImpact           = "fullImpact"
	KeyImpactToggle         = "impactToggle"
	KeyAudienceVoting       = "audienceVoting"
	KeyAudienceHalfImpact   = "audienceHalfImpact"
	KeyAudienceFullImpact   = "audienceFullImpact"
	KeyNumVoters            = "numVoters"
	KeyTotalPoints          = "totalPoints"
	KeyVoterDescription     = "voterDescription"
	KeyCalculateResult      = "calculateResult"
	KeyFinalScore           = "finalScore"
	KeyOutOf                = "outOf"
	KeyScoreBreakdown       = "scoreBreakdown"
	KeyJudgesScore          = "judgesScore"
	KeyAudienceScore        = "audienceScore"
	KeyDetailedCalculations = "detailedCalculations"
	KeyJudgeAverages        = "judgeAverages"
	KeyOverallJudgesAverage = "overallJudgesAverage"
	KeyAudienceAverage      = "audienceAverage"
	KeyCalculationNote1     = "calculationNote1"
	KeyCalculationNote2     = "calculationNote2"
	KeyCalculationNote3     = "calculationNote3"
	KeyEnterScores          = "enterScores"
	KeyCopyright            = "copyright"
)

var catalog = map[Locale]map[string]string{
	English: {
		KeyTitle:                "Rustic Got Talent Calculator",
		KeySubtitle:             "Calculate contestant scores based on judges' ratings and audience votes",
		KeyCorpsMessage:         "Regards from the Corp of Talents",
		KeyJudgesConfig:         "Judges Configuration",
		KeyNumJudges:            "Number of Judges:",
		KeyJudge:                "Judge",
		KeyCreativity:           "Creativity (0-10)",
		KeyQuality:              "Quality (0-10)",
		KeySpecialCriteria:      "Special Criteria",
		KeyCriteria:             "Criteria",
		KeyHalfImpact:           "Half Impact",
		KeyFullImpact:           "Full Impact",
		KeyImpactToggle:         "Impact Level",
		KeyAudienceVoting:       "Audience Voting",
		KeyAudienceHalfImpact:   "Audience Voting (Half Impact)",
		KeyAudienceFullImpact:   "Audience Voting (Full Impact)",
		KeyNumVoters:            "Number of Voters",
		KeyTotalPoints:          "Total Points",
		KeyVoterDescription:     "Each voter gives 1-10 points. Total = sum of all votes.",
		KeyCalculateResult:      "Calculate Result",
		KeyFinalScore:           "Final Score",
		KeyOutOf:                "out of 10.00",
		KeyScoreBreakdown:       "Score Breakdown",
		KeyJudgesScore:          "Judges' Score",
		KeyAudienceScore:        "Audience Score",
		KeyDetailedCalculations: "Detailed Calculations",
		KeyJudgeAverages:        "Judge Averages:",
		KeyOverallJudgesAverage: "Overall Judges Average:",
		KeyAudienceAverage:      "Audience Average:",
		KeyCalculationNote1:     "• Judges' Score = Overall Judges Average × Impact",
		KeyCalculationNote2:     "• Audience Score = Audience Average × Impact",
		KeyCalculationNote3:     "• Final Score = Judges' Score + Audience Score",
		KeyEnterScores:          `Enter scores and click "Calculate Result" to see the final score and breakdown.`,
		KeyCopyright:            "© 2025 Rustic Kingdom 🗝️ | Developer: Adham",
	},
	Arabic: {
		KeyTitle:                "حاسبة موهبة ريستيك",
		KeySubtitle:             "احسب نقاط المتسابقين بناءً على تقييمات الحكام وأصوات الجمهور",
		KeyCorpsMessage:         "تحيات من مؤسسة المواهب",
		KeyJudgesConfig:         "إعداد الحكام",
		KeyNumJudges:            "عدد الحكام:",
		KeyJudge:                "الحكم",
		KeyCreativity:           "الإبداع (0-10)",
		KeyQuality:              "الجودة (0-10)",
		KeySpecialCriteria:      "معايير خاصة",
		KeyCriteria:             "معيار",
		KeyHalfImpact:           "تأثير نصف",
		KeyFullImpact:           "تأثير كامل",
		KeyImpactToggle:         "مستوى التأثير",
		KeyAudienceVoting:       "تصويت الجمهور",
		KeyAudienceHalfImpact:   "تصويت الجمهور (تأثير نصف)",
		KeyAudienceFullImpact:   "تصويت الجمهور (تأثير كامل)",
		KeyNumVoters:            "عدد المصوتين",
		KeyTotalPoints:          "إجمالي النقاط",
		KeyVoterDescription:     "كل مصوت يعطي 1-10 نقاط. الإجمالي = مجموع جميع الأصوات.",
		KeyCalculateResult:      "احسب النتيجة",
		KeyFinalScore:           "النتيجة النهائية",
		KeyOutOf:                "من 10.00",
		KeyScoreBreakdown:       "تفصيل النقاط",
		KeyJudgesScore:          "نقاط الحكام",
		KeyAudienceScore:        "نقاط الجمهور",
		KeyDetailedCalculations: "الحسابات التفصيلية",
		KeyJudgeAverages:        "متوسطات الحكام:",
		KeyOverallJudgesAverage: "متوسط الحكام الإجمالي:",
		KeyAudienceAverage:      "متوسط الجمهور:",
		KeyCalculationNote1:     "• نقاط الحكام = متوسط الحكام الإجمالي × التأثير",
		KeyCalculationNote2:     "• نقاط الجمهور = متوسط الجمهور × التأثير",
		KeyCalculationNote3:     "• النتيجة النهائية = نقاط الحكام + نقاط الجمهور",
		KeyEnterScores:          "أدخل النقاط واضغط \"احسب النتيجة\" لرؤية النتيجة النهائية والتفصيل.",
		KeyCopyright:            "© 2025 مملكة ريستيك 🗝️ | المطور: أدهم",
	},
}
