package locale

// Prompt data for the two supported locales. The friendly presets carry
// the conversational wording; the clinical presets keep the same
// questions and keyword sets with terse instructions.

var cantoneseFriendly = &Pack{
	Code: Cantonese,
	Tone: ToneFriendly,

	Welcome:               "你好！很高興見到你！我是你的語音助手。今天我們會聊聊天，做一些輕鬆的小測驗，就像朋友之間的對話一樣。放輕鬆就好，我們開始吧！",
	PassGoodbye:           "太棒了！你做得非常好，我們的小測驗就到這裡。謝謝你今天跟我聊天！",
	ContinueEncouragement: "好的，你做得很不錯！讓我們再聊聊其他的話題，多了解一下你的情況。",

	UnsupportedInputNotice: "你的裝置不支援語音辨識功能，請使用手動按鈕繼續。",

	MiniCog: MiniCogTexts{
		WordsInstruction:  "好，我們開始第一個小遊戲！我會說三個簡單的詞語，你聽完之後跟我重複一次就可以了。準備好了嗎？這三個詞是：蘋果、筆、鞋。來，跟我說一次吧！",
		ClockInstruction:  "很好！你做得很棒！現在我們來畫畫吧。請你在紙上畫一個圓圓的時鐘，然後把指針指向11點10分。就像平時看手錶那樣。畫完了就跟我說「完成」，好嗎？",
		RecallInstruction: "太好了！最後一個小問題。還記得我們剛開始時說的那三個詞語嗎？試試看能不能想起來告訴我。",
		RepetitionAck:     "聽清楚了！",
		ClockAck:          "很棒！我知道你畫完了。",
		RecallAck:         "好的，讓我看看你的答案...",

		TargetWords:        []string{"蘋果", "筆", "鞋"},
		ClockConfirmTokens: []string{"完成", "好", "畫完", "画完"},
	},

	Slums: SlumsTexts{
		Questions: [11]string{
			"今天是星期幾？",
			"你住在哪裡？",
			"你是哪一個城市的？",
			"我給你五個物品名稱，請記住它們：蘋果、汽車、狗、球、床。稍後我會問你。",
			"請你從100開始，每次減去7，連續三次。",
			"你剛才記得的五個物品是什麼？",
			"請我念幾個數字，你反過來說出來。現在試這個：7、4、2。",
			"請完成這句話：火和煙，錘子和____？",
			"你在市場以3元買一個蘋果，買兩個要多少錢？",
			"請重複這句話：今天是個晴朗的日子，我們去公園玩耍。",
			"現在請你描述我剛才說的句子的意思。",
		},
		Acks:    []string{"好的！", "明白了！", "聽到了！", "謝謝你！"},
		Closing: "好了，所有問題都完成了！謝謝你的耐心配合！",

		RecallItems: []string{"蘋果", "汽車", "狗", "球", "床", "苹果", "汽车"},
		NailTokens:  []string{"釘", "钉"},
		SunnyToken:  "晴朗",
		ParkToken:   "公園",
	},

	Results: ResultTexts{
		NormalLabel: "正常認知功能",
		MildLabel:   "輕度認知障礙",
		SevereLabel: "認知功能明顯受損",

		NormalRecommendation: "您的認知功能表現正常。建議保持健康的生活方式。",
		MildRecommendation:   "建議諮詢醫生進行進一步評估。",
		SevereRecommendation: "強烈建議盡快諮詢專業醫生進行詳細檢查。",

		Disclaimer: "免責聲明：此測驗僅供參考，不能替代專業醫療診斷。如有疑慮，請諮詢合格的醫療專業人員。",
	},
}

var mandarinFriendly = &Pack{
	Code: Mandarin,
	Tone: ToneFriendly,

	Welcome:               "你好！很高兴见到你！我是你的语音助手。今天我们会聊聊天，做一些轻松的小测验，就像朋友之间的对话一样。放轻松就好，我们开始吧！",
	PassGoodbye:           "太棒了！你做得非常好，我们的小测验就到这里。谢谢你今天跟我聊天！",
	ContinueEncouragement: "好的，你做得很不错！让我们再聊聊其他的话题，多了解一下你的情况。",

	UnsupportedInputNotice: "您的设备不支持语音识别功能，请使用手动按钮继续。",

	MiniCog: MiniCogTexts{
		WordsInstruction:  "好，我们开始第一个小游戏！我会说三个简单的词语，你听完之后跟我重复一次就可以了。准备好了吗？这三个词是：苹果、笔、鞋。来，跟我说一次吧！",
		ClockInstruction:  "很好！你做得很棒！现在我们来画画吧。请你在纸上画一个圆圆的时钟，然后把指针指向11点10分。就像平时看手表那样。画完了就跟我说「完成」，好吗？",
		RecallInstruction: "太好了！最后一个小问题。还记得我们刚开始时说的那三个词语吗？试试看能不能想起来告诉我。",
		RepetitionAck:     "听清楚了！",
		ClockAck:          "很棒！我知道你画完了。",
		RecallAck:         "好的，让我看看你的答案...",

		TargetWords:        []string{"苹果", "笔", "鞋"},
		ClockConfirmTokens: []string{"完成", "好", "畫完", "画完"},
	},

	Slums: SlumsTexts{
		Questions: [11]string{
			"今天是星期几？",
			"你住在哪里？",
			"你是哪一个城市的？",
			"我给你五个物品名称，请记住它们：苹果、汽车、狗、球、床。稍后我会问你。",
			"请你从100开始，每次减去7，连续三次。",
			"你刚才记得的五个物品是什么？",
			"请我念几个数字，你反过来说出来。现在试这个：7、4、2。",
			"请完成这句话：火和烟，锤子和____？",
			"你在市场以3元买一个苹果，买两个要多少钱？",
			"请重复这句话：今天是个晴朗的日子，我们去公园玩耍。",
			"现在请你描述我刚才说的句子的意思。",
		},
		Acks:    []string{"好的！", "明白了！", "听到了！", "谢谢你！"},
		Closing: "好了，所有问题都完成了！谢谢你的耐心配合！",

		RecallItems: []string{"苹果", "汽车", "狗", "球", "床", "蘋果", "汽車"},
		NailTokens:  []string{"钉", "釘"},
		SunnyToken:  "晴朗",
		ParkToken:   "公园",
	},

	Results: ResultTexts{
		NormalLabel: "正常认知功能",
		MildLabel:   "轻度认知障碍",
		SevereLabel: "认知功能明显受损",

		NormalRecommendation: "您的认知功能表现正常。建议保持健康的生活方式。",
		MildRecommendation:   "建议咨询医生进行进一步评估。",
		SevereRecommendation: "强烈建议尽快咨询专业医生进行详细检查。",

		Disclaimer: "免责声明：此测验仅供参考，不能替代专业医疗诊断。如有疑虑，请咨询合格的医疗专业人员。",
	},
}

var cantoneseClinical = clinicalVariant(cantoneseFriendly, clinicalTexts{
	welcome:               "你好。現在開始認知篩查測驗，請按照語音指示回答。",
	passGoodbye:           "測驗完成。謝謝你的配合。",
	continueEncouragement: "現在進行第二部分測驗。",
	wordsInstruction:      "請聽以下三個詞語並跟我重複：蘋果、筆、鞋。",
	clockInstruction:      "請在紙上畫一個時鐘，指針指向11點10分。完成後請說「完成」。",
	recallInstruction:     "請說出剛才的三個詞語。",
	repetitionAck:         "好。",
	clockAck:              "好。",
	recallAck:             "好。",
	acks:                  []string{"好。", "明白。"},
	closing:               "測驗完成。",
})

var mandarinClinical = clinicalVariant(mandarinFriendly, clinicalTexts{
	welcome:               "你好。现在开始认知筛查测验，请按照语音指示回答。",
	passGoodbye:           "测验完成。谢谢你的配合。",
	continueEncouragement: "现在进行第二部分测验。",
	wordsInstruction:      "请听以下三个词语并跟我重复：苹果、笔、鞋。",
	clockInstruction:      "请在纸上画一个时钟，指针指向11点10分。完成后请说「完成」。",
	recallInstruction:     "请说出刚才的三个词语。",
	repetitionAck:         "好。",
	clockAck:              "好。",
	recallAck:             "好。",
	acks:                  []string{"好。", "明白。"},
	closing:               "测验完成。",
})

type clinicalTexts struct {
	welcome               string
	passGoodbye           string
	continueEncouragement string
	wordsInstruction      string
	clockInstruction      string
	recallInstruction     string
	repetitionAck         string
	clockAck              string
	recallAck             string
	acks                  []string
	closing               string
}

// clinicalVariant derives a clinical pack from a friendly base. The
// questions and keyword sets are shared; only the surrounding wording
// changes, so the scoring rules stay identical across tones.
func clinicalVariant(base *Pack, t clinicalTexts) *Pack {
	p := *base
	p.Tone = ToneClinical
	p.Welcome = t.welcome
	p.PassGoodbye = t.passGoodbye
	p.ContinueEncouragement = t.continueEncouragement
	p.MiniCog.WordsInstruction = t.wordsInstruction
	p.MiniCog.ClockInstruction = t.clockInstruction
	p.MiniCog.RecallInstruction = t.recallInstruction
	p.MiniCog.RepetitionAck = t.repetitionAck
	p.MiniCog.ClockAck = t.clockAck
	p.MiniCog.RecallAck = t.recallAck
	p.Slums.Acks = t.acks
	p.Slums.Closing = t.closing
	return &p
}
