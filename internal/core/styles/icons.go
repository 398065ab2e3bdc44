package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconLike      = "\U000F012C" // 󰄬
	IconDislike   = "\U000F0156" // 󰅖
	IconBookmark  = "\U000F00C0" // 󰃀
	IconShare     = "\U000F0497" // 󰒗
	IconHelpful   = "\U000F0513" // 󰔓
	IconReply     = "\U000F0B9C" // 󰮜
	IconPinned    = "\U000F0403" // 󰐃
	IconLocked    = "\U000F033E" // 󰌾
	IconVerified  = "\U000F05E0" // 󰗠
	IconEdited    = "\U000F03EB" // 󰏫
	IconTranslate = "\U000F05CA" // 󰗊
	IconEdit      = "\U000F064F" // 󰙏
	IconDelete    = "\U000F01B4" // 󰆴
	IconReport    = "\U000F023B" // 󰈻
	IconFlag      = "\U000F023B" // 󰈻
	IconEye       = "\U000F0208" // 󰈈

	IconNotifyInfo    = "\U000F02FC" // 󰋼
	IconNotifyWarning = "\U000F0026" // 󰀦
	IconNotifyError   = "\U000F0159" // 󰅙
)
