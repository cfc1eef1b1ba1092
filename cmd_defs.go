package viml

// CmdFlag mirrors the per-command flag bits from the original
// VimlCommandDefinition table: properties the dispatcher and
// block-sequence parser consult without needing to know a command's
// specific grammar.
type CmdFlag uint32

const (
	FlagRange CmdFlag = 1 << iota
	FlagBang
	FlagExtra
	FlagNotrlcom
	FlagTrlbar
	FlagUsectrlv
	FlagXfile
	FlagIsgrep
	FlagLiteral
	FlagExflags
	FlagCount
	FlagRegstr
	FlagEditcmd
	FlagIsmodifier
	FlagArgopt
)

// cmdParseFn parses a command's argument string (already extracted by
// getCmdArg) into node. It receives the owning parser so it can recurse
// into sub-expressions via the shared options.
type cmdParseFn func(ps *parseState, node *CommandNode, arg string) error

// cmdDef is one row of the command-definitions table: the flags the
// dispatcher consults plus the command's own argument parser.
type cmdDef struct {
	Flags CmdFlag
	Parse cmdParseFn
}

// cmddefs maps each recognised CommandType to its flags and argument
// parser. Commands absent from this table (CmdUnknown and any CmdUser)
// and entries with a nil Parse keep their argument text in RawArg as
// parseOneCmd extracted it.
var cmddefs map[CommandType]cmdDef

func init() {
	cmddefs = map[CommandType]cmdDef{
		CmdEcho:    {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprCmd},
		CmdEchon:   {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprCmd},
		CmdEchomsg: {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprCmd},
		CmdEchoerr: {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprCmd},
		CmdExecute: {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprCmd},

		CmdLet:       {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseLet},
		CmdConst:     {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseLet},
		CmdUnlet:     {Flags: FlagExtra | FlagBang | FlagNotrlcom | FlagTrlbar, Parse: parseUnlet},
		CmdLockvar:   {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseLockvar},
		CmdUnlockvar: {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseLockvar},

		CmdIf:     {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprOnlyCmd},
		CmdElseif: {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprOnlyCmd},
		CmdElse:   {Flags: 0, Parse: parseRestAllowEmpty},
		CmdEndif:  {Flags: 0, Parse: parseRestAllowEmpty},

		CmdWhile:    {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprOnlyCmd},
		CmdEndwhile: {Flags: 0, Parse: parseRestAllowEmpty},

		CmdFor:    {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseFor},
		CmdEndfor: {Flags: 0, Parse: parseRestAllowEmpty},

		CmdTry:     {Flags: 0, Parse: parseRestAllowEmpty},
		CmdCatch:   {Flags: FlagExtra | FlagBang | FlagNotrlcom | FlagTrlbar, Parse: parseCatch},
		CmdFinally: {Flags: 0, Parse: parseRestAllowEmpty},
		CmdEndtry:  {Flags: 0, Parse: parseRestAllowEmpty},

		CmdFunction:    {Flags: FlagExtra | FlagBang, Parse: parseFunction},
		CmdEndfunction: {Flags: 0, Parse: parseRestAllowEmpty},
		CmdReturn:      {Flags: FlagExtra | FlagNotrlcom | FlagTrlbar, Parse: parseExprCmd},
		CmdCall:        {Flags: FlagExtra | FlagRange | FlagNotrlcom | FlagTrlbar, Parse: parseCall},
		CmdDelfunction: {Flags: FlagExtra | FlagBang, Parse: parseRestLine},

		CmdBreak:    {Flags: 0, Parse: parseRestAllowEmpty},
		CmdContinue: {Flags: 0, Parse: parseRestAllowEmpty},

		CmdMap:      {Flags: FlagExtra | FlagUsectrlv | FlagBang, Parse: parseMap},
		CmdNoremap:  {Flags: FlagExtra | FlagUsectrlv | FlagBang, Parse: parseMap},
		CmdUnmap:    {Flags: FlagExtra | FlagUsectrlv | FlagBang, Parse: parseMap},
		CmdMapclear: {Flags: FlagExtra | FlagBang, Parse: parseRestAllowEmpty},

		CmdMenu:   {Flags: FlagExtra | FlagUsectrlv | FlagBang, Parse: parseMenu},
		CmdUnmenu: {Flags: FlagExtra | FlagBang, Parse: parseMenu},

		CmdAutocmd: {Flags: FlagExtra | FlagBang, Parse: parseAutocmd},
		CmdAugroup: {Flags: FlagExtra | FlagBang, Parse: parseRestAllowEmpty},

		CmdCommand:    {Flags: FlagExtra | FlagBang, Parse: parseCommand},
		CmdDelcommand: {Flags: FlagExtra | FlagBang, Parse: parseRestLine},

		CmdSubstitute: {Flags: FlagRange | FlagExtra | FlagCount | FlagExflags, Parse: parseSub},
		CmdSet:        {Flags: FlagExtra | FlagTrlbar, Parse: parseSet},
		CmdHighlight:  {Flags: FlagExtra | FlagBang, Parse: parseHighlight},

		CmdSilent:       {Flags: FlagIsmodifier | FlagBang},
		CmdUnsilent:     {Flags: FlagIsmodifier},
		CmdVerbose:      {Flags: FlagIsmodifier | FlagCount},
		CmdVertical:     {Flags: FlagIsmodifier},
		CmdTab:          {Flags: FlagIsmodifier | FlagCount},
		CmdTopleft:      {Flags: FlagIsmodifier},
		CmdBotright:     {Flags: FlagIsmodifier},
		CmdAboveleft:    {Flags: FlagIsmodifier},
		CmdBelowright:   {Flags: FlagIsmodifier},
		CmdLeftabove:    {Flags: FlagIsmodifier},
		CmdRightbelow:   {Flags: FlagIsmodifier},
		CmdKeepalt:      {Flags: FlagIsmodifier},
		CmdKeepjumps:    {Flags: FlagIsmodifier},
		CmdKeepmarks:    {Flags: FlagIsmodifier},
		CmdKeeppatterns: {Flags: FlagIsmodifier},
		CmdLockmarks:    {Flags: FlagIsmodifier},
		CmdNoautocmd:    {Flags: FlagIsmodifier},
		CmdHide:         {Flags: FlagIsmodifier | FlagCount},
		CmdSandbox:      {Flags: FlagIsmodifier},

		CmdEdit:     {Flags: FlagBang | FlagXfile | FlagArgopt | FlagEditcmd, Parse: parseXFileArg},
		CmdNew:      {Flags: FlagBang | FlagXfile | FlagArgopt | FlagEditcmd, Parse: parseXFileArg},
		CmdSplit:    {Flags: FlagRange | FlagBang | FlagXfile | FlagArgopt | FlagEditcmd, Parse: parseXFileArg},
		CmdVsplit:   {Flags: FlagRange | FlagBang | FlagXfile | FlagArgopt | FlagEditcmd, Parse: parseXFileArg},
		CmdTabedit:  {Flags: FlagBang | FlagXfile | FlagArgopt | FlagEditcmd, Parse: parseXFileArg},
		CmdRead:     {Flags: FlagRange | FlagBang | FlagXfile | FlagArgopt, Parse: parseXFileArg},
		CmdWrite:    {Flags: FlagRange | FlagBang | FlagXfile | FlagArgopt, Parse: parseXFileArg},
		CmdSaveas:   {Flags: FlagBang | FlagXfile | FlagArgopt, Parse: parseXFileArg},
		CmdSource:   {Flags: FlagBang | FlagXfile, Parse: parseXFileArg},
		CmdCd:       {Flags: FlagBang | FlagXfile, Parse: parseXFileArg},
		CmdLcd:      {Flags: FlagBang | FlagXfile, Parse: parseXFileArg},
		CmdNext:     {Flags: FlagBang | FlagXfile | FlagArgopt, Parse: parseXFileArg},
		CmdPrevious: {Flags: FlagBang},
		CmdArgs:     {Flags: FlagBang | FlagXfile, Parse: parseXFileArg},
		CmdArgadd:   {Flags: FlagBang | FlagXfile, Parse: parseXFileArg},

		CmdArgdo: {Flags: FlagExtra | FlagNotrlcom | FlagBang},
		CmdBufdo: {Flags: FlagExtra | FlagNotrlcom | FlagBang},
		CmdWindo: {Flags: FlagExtra | FlagNotrlcom},
		CmdTabdo: {Flags: FlagExtra | FlagNotrlcom},

		CmdAppend: {Flags: FlagRange | FlagBang, Parse: parseAppend},
		CmdInsert: {Flags: FlagRange | FlagBang, Parse: parseAppend},
		CmdChange: {Flags: FlagRange | FlagBang, Parse: parseAppend},

		CmdGlobal:  {Flags: FlagRange | FlagBang | FlagExtra | FlagNotrlcom, Parse: parseGlobal},
		CmdVglobal: {Flags: FlagRange | FlagExtra | FlagNotrlcom, Parse: parseGlobal},
		CmdVimgrep: {Flags: FlagBang | FlagExtra | FlagIsgrep, Parse: parseVimgrep},
		CmdNormal:  {Flags: FlagRange | FlagBang | FlagExtra | FlagNotrlcom | FlagLiteral | FlagUsectrlv, Parse: parseNormal},

		CmdWincmd:   {Flags: FlagCount | FlagExtra, Parse: parseWincmd},
		CmdZ:        {Flags: FlagRange | FlagExtra, Parse: parseZ},
		CmdSort:     {Flags: FlagRange | FlagBang | FlagExtra, Parse: parseSort},
		CmdMarks:    {Flags: FlagExtra, Parse: parseRestAllowEmpty},
		CmdDelmarks: {Flags: FlagBang | FlagExtra, Parse: parseDelmarks},
		CmdHistory:  {Flags: FlagExtra, Parse: parseHistory},
		CmdRetab:    {Flags: FlagRange | FlagBang | FlagCount, Parse: parseRestAllowEmpty},
		CmdResize:   {Flags: FlagExtra, Parse: parseSignedCount},
		CmdRedir:    {Flags: FlagBang | FlagExtra | FlagNotrlcom, Parse: parseRedir},
		CmdSleep:    {Flags: FlagExtra, Parse: parseSleep},
		CmdMark:     {Flags: FlagRange | FlagExtra, Parse: parseMark},
		CmdMatch:    {Flags: FlagExtra, Parse: parseMatch},
		CmdJoin:     {Flags: FlagRange | FlagBang | FlagCount | FlagExflags, Parse: parseRestAllowEmpty},
		CmdYank:     {Flags: FlagRange | FlagRegstr | FlagCount, Parse: parseRestAllowEmpty},
		CmdPut:      {Flags: FlagRange | FlagBang | FlagRegstr, Parse: parseRestAllowEmpty},
		CmdCopy:     {Flags: FlagRange | FlagExtra, Parse: parseDestAddress},
		CmdMove:     {Flags: FlagRange | FlagExtra, Parse: parseDestAddress},
		CmdHelp:     {Flags: FlagExtra | FlagNotrlcom, Parse: parseRestAllowEmpty},
		CmdHelpgrep: {Flags: FlagExtra | FlagNotrlcom, Parse: parseRegexRest},
		CmdLanguage: {Flags: FlagExtra, Parse: parseLanguage},
		CmdBehave:   {Flags: FlagExtra, Parse: parseBehave},
		CmdFiletype: {Flags: FlagExtra, Parse: parseFiletype},
		CmdDigraphs: {Flags: FlagExtra, Parse: parseDigraphs},
		CmdDisplay:  {Flags: FlagExtra, Parse: parseRestAllowEmpty},
		CmdLater:    {Flags: FlagExtra, Parse: parseLater},
		CmdEarlier:  {Flags: FlagExtra, Parse: parseLater},
		CmdBreakadd: {Flags: FlagExtra, Parse: parseBreakadd},
		CmdBreakdel: {Flags: FlagExtra, Parse: parseBreakadd},
		CmdProfile:  {Flags: FlagExtra, Parse: parseProfile},
		CmdProfdel:  {Flags: FlagExtra, Parse: parseProfile},
		CmdWinpos:   {Flags: FlagExtra, Parse: parseTwoNumbers},
		CmdWinsize:  {Flags: FlagExtra, Parse: parseTwoNumbers},
		CmdSyntime:  {Flags: FlagExtra, Parse: parseSyntime},
		CmdOpen:     {Flags: FlagRange | FlagExtra, Parse: parseOptionalRegex},
		CmdGui:      {Flags: FlagBang | FlagXfile, Parse: parseXFileArg},
		CmdPopup:    {Flags: FlagExtra, Parse: parseRestLine},
		CmdMake:     {Flags: FlagBang | FlagExtra | FlagNotrlcom, Parse: parseRestAllowEmpty},
		CmdQuit:     {Flags: FlagBang},
		CmdUndo:     {},
		CmdRedo:     {},

		CmdScriptnames: {},

		CmdPrint:  {Flags: FlagRange | FlagCount | FlagExflags, Parse: parseRestAllowEmpty},
		CmdDelete: {Flags: FlagRange | FlagRegstr | FlagCount | FlagExflags, Parse: parseRestAllowEmpty},
		CmdPython: {Flags: FlagExtra | FlagNotrlcom, Parse: parseRestAllowEmpty},

		CmdAt:         {Flags: FlagRange | FlagCount | FlagExtra, Parse: parseAt},
		CmdStar:       {Flags: FlagRange | FlagCount | FlagExtra, Parse: parseRestAllowEmpty},
		CmdBang:       {Flags: FlagRange | FlagBang | FlagExtra | FlagNotrlcom, Parse: parseRestAllowEmpty},
		CmdEqual:      {Flags: FlagRange | FlagExflags},
		CmdShiftRight: {Flags: FlagRange | FlagCount | FlagExflags},
		CmdShiftLeft:  {Flags: FlagRange | FlagCount | FlagExflags},
	}
}
