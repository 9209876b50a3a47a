package handlers

// User-facing reply texts. All replies are Traditional Chinese because the
// bot serves a Taiwanese student community.
const (
	msgRegisterSuccess   = "Token 有效，註冊成功"
	msgTokenInvalid      = "Token 無效，請重新註冊，格式為 /註冊 sk-xxxxx"
	msgUnregistered      = "請先註冊 Token，格式為 /註冊 sk-xxxxx"
	msgAudioUnregistered = "請先註冊你的 API Token，格式為 /註冊 [API TOKEN]"
	msgSystemAccepted    = "輸入成功"
	msgMemoryCleared     = "歷史訊息清除成功"
	msgBadKey            = "OpenAI API Token 有誤，請重新註冊。"
	msgOverloaded        = "已超過負荷，請稍後再試"
	msgUnreadableSite    = "無法撈取此網站文字"
)

const helpText = "指令：\n" +
	"/註冊 + API Token\n" +
	"👉 API Token 請先到 https://platform.openai.com/ 註冊登入後取得\n\n" +
	"/系統訊息 + Prompt\n" +
	"👉 Prompt 可以命令機器人扮演某個角色，例如：請你扮演擅長做總結的人\n\n" +
	"/清除\n" +
	"👉 當前每一次都會紀錄最後兩筆歷史紀錄，這個指令能夠清除歷史訊息\n\n" +
	"/圖像 + Prompt\n" +
	"👉 會調用 DALL∙E 2 Model，以文字生成圖像\n\n" +
	"語音輸入\n" +
	"👉 會調用 Whisper 模型，先將語音轉換成文字，再調用 ChatGPT 以文字回覆\n\n" +
	"其他文字輸入\n" +
	"👉 調用 ChatGPT 以文字回覆"

// Canned answers for rich-menu prompts about local resources, topics the
// model answers poorly on its own.
const counselingText = "1. 政大心理諮商中心，是離學校最近的選擇，人潮有點多需要提前預約，地址是：台北市文山區新光路一段25巷29號\n\n" +
	"2. 木柵身心診所，搭530號公車大約15分鐘，大多數人對診所的評價是親切且專業，地址是：台北市文山區辛亥路四段246號\n\n" +
	"3. 利伯他茲心理諮商所，搭933號公車大約10分鐘，評論數不多但評價良好，地址是台北市文山區木柵路二段62號2樓\n\n" +
	"4. 依懷心理諮商所，搭棕6號公車大約20分鐘，聽說環境讓人很放鬆，地址是：台北市文山區羅斯福路六段297號6樓\n\n" +
	"5. 羅吉斯心理諮商所，搭棕6號公車大約20分鐘，部分民眾對諮商師評價是專業，但也有部分的人認為遭受批評，地址是：台北市文山區景興路258號"

const strollText = "1. 小坑溪文學步道，寧靜悠閒自在的步道，可搭乘棕11至政大二街站下車，約30分鐘可以走完\n\n" +
	"2. 清溪綠地，鄰近政大，景緻優美，適合一個小時的散步\n\n" +
	"3. 道南河濱公園，景美溪岸的河濱公園，公園除了具備運動設施外，還有相當有特色的兒遊戲場\n\n" +
	"4. 福德坑滑草場，不用自備滑草板，現場有五台滑草車供大家使用，可以玩的非常盡興，適合一大早來\n\n" +
	"5. 貓空壺穴，可以搭乘纜車到貓空站再步行過來，約20多分鐘，壺穴吊橋小巧可愛，容易濕滑要小心不要滑倒！"
