package vb

import "strings"

// WordList is one ordered keyword set. Membership is queried with the
// already-lowercased token text; lists are built from space-separated words
// the way host editors ship them.
type WordList map[string]struct{}

// NewWordList builds a list from whitespace-separated words, lowercasing
// each entry.
func NewWordList(words string) WordList {
	wl := make(WordList)
	for _, w := range strings.Fields(words) {
		wl[strings.ToLower(w)] = struct{}{}
	}
	return wl
}

// Contains reports whether the lowercase token s is in the list.
func (wl WordList) Contains(s string) bool {
	_, ok := wl[s]
	return ok
}

// Extend adds whitespace-separated words to the list.
func (wl WordList) Extend(words string) {
	for _, w := range strings.Fields(words) {
		wl[strings.ToLower(w)] = struct{}{}
	}
}

// KeywordSets carries the six keyword lists the scanner classifies against,
// in classification priority order (core first, constants last).
type KeywordSets struct {
	Core         WordList // statement keywords
	Types        WordList // built-in type names
	Library      WordList // runtime-library functions, secondary keywords
	Preprocessor WordList // #-directive bodies, matched without the '#'
	Attributes   WordList // VBA attribute names
	Constants    WordList // predefined constants
}

// DefaultKeywords returns the stock keyword sets covering all three
// dialects. Dialect-conditional behavior lives in the scanner, not here:
// a VBScript scan simply never reaches the preprocessor set.
func DefaultKeywords() *KeywordSets {
	return &KeywordSets{
		Core: NewWordList(`
			addhandler addressof alias and andalso as attribute begin binary byref byval
			call case catch class compare const continue custom declare default delegate
			dim directcast do each else elseif end endif enum erase error event exit
			explicit finally for friend function get gettype global gosub goto handles
			if implements imports in inherits interface is isnot let lib like loop me
			mid mod module mustinherit mustoverride mybase myclass namespace narrowing
			new next not of on operator option optional or orelse overloads overridable
			overrides paramarray partial preserve private property protected public
			raiseevent readonly redim rem removehandler resume return seek select set
			shadows shared static step stop structure sub synclock text then throw to
			try trycast type typeof until using wend when while widening with withevents
			writeonly xor`),
		Types: NewWordList(`
			any boolean byte char currency date decimal double integer long object
			sbyte short single string uinteger ulong ushort variant`),
		Library: NewWordList(`
			abs array asc atn cbool cbyte cchar ccur cdate cdbl cdec chr chrw cint clng
			cobj cos createobject csbyte cshort csng cstr cuint culng cushort datadd
			dateadd datediff datepart dateserial datevalue day environ eof exp filter
			fix format formatcurrency formatdatetime formatnumber formatpercent freefile
			getobject hex hour iif input inputbox instr instrrev int isarray isdate
			isempty isnothing isnull isnumeric isobject join lbound lcase left len log
			ltrim maths minute month monthname msgbox now oct replace right rnd round
			rtrim second sgn sin space split sqr str strcomp strconv strreverse tan
			time timer timeserial timevalue trim typename ubound ucase val weekday
			weekdayname year`),
		Preprocessor: NewWordList(`
			const disable else elseif enable end externalsource if region`),
		Attributes: NewWordList(`
			vb_base vb_creatable vb_customizable vb_description vb_exposed vb_ext_key
			vb_globalnamespace vb_helpid vb_invoke_func vb_invoke_property
			vb_invoke_propertyput vb_invoke_propertyputref vb_memberflags vb_name
			vb_predeclaredid vb_procdata vb_templatederived vb_usermemid
			vb_vardescription vb_varhelpid vb_varmemberflags vb_varprocdata
			vb_varusermemid`),
		Constants: NewWordList(`
			empty false nothing null true vbabort vbabortretryignore vbback
			vbbinarycompare vbblack vbblue vbcancel vbcr vbcrlf vbcritical vbcyan
			vbdefaultbutton1 vbdefaultbutton2 vbdefaultbutton3 vbexclamation vbfalse
			vbgreen vbignore vbinformation vblf vbmagenta vbnewline vbno vbnullchar
			vbnullstring vbobjecterror vbok vbokcancel vbokonly vbquestion vbred
			vbretry vbretrycancel vbtab vbtextcompare vbtrue vbwhite vbyellow vbyes
			vbyesno vbyesnocancel`),
	}
}
