package rule

import "testing"

func TestTryIrrD(t *testing.T) {
	rw, ok := TryIrrD("걸", "어요")
	if !ok {
		t.Fatal("expected IRR_D to fire")
	}
	if rw.Stem != "걷" || rw.Tag != IrrD {
		t.Errorf("got %+v", rw)
	}
}

func TestTryIrrU(t *testing.T) {
	rw, ok := TryIrrU("퍼", "")
	if !ok {
		t.Fatal("expected IRR_U to fire on bare 퍼")
	}
	if rw.Stem != "푸" || rw.Ending != "어" {
		t.Errorf("got %+v, want stem 푸 ending 어", rw)
	}

	rw, ok = TryIrrU("펐", "서")
	if !ok {
		t.Fatal("expected IRR_U to fire on 펐 + 서")
	}
	if rw.Stem != "푸" || rw.Ending != "었서" {
		t.Errorf("got %+v, want stem 푸 ending 었서", rw)
	}

	if _, ok := TryIrrU("퍼", "다"); ok {
		t.Error("IRR_U should not fire when ending is neither empty nor 서")
	}
}

func TestTryFinalSound(t *testing.T) {
	rw, ok := TryFinalSound("절", "더러")
	if !ok {
		t.Fatal("expected FINAL_SOUND to fire")
	}
	if rw.Stem != "저" || rw.Ending != "ㄹ더러" {
		t.Errorf("got %+v, want stem 저 ending ㄹ더러", rw)
	}

	rw, ok = TryFinalSound("간", "걸")
	if !ok {
		t.Fatal("expected FINAL_SOUND to fire")
	}
	if rw.Stem != "가" || rw.Ending != "ㄴ걸" {
		t.Errorf("got %+v, want stem 가 ending ㄴ걸", rw)
	}

	if _, ok := TryFinalSound("가", "걸"); ok {
		t.Error("FINAL_SOUND should not fire on a stem with no jongseong")
	}
}

func TestApplyIncludesIrrU(t *testing.T) {
	rws := Apply("퍼", "", nil)
	found := false
	for _, rw := range rws {
		if rw.Tag == IrrU {
			found = true
		}
	}
	if !found {
		t.Fatal("expected Apply to include IRR_U in its tryer list")
	}
}

func TestTryIrrH1(t *testing.T) {
	rw, ok := TryIrrH1("까마", "ㄴ")
	if !ok {
		t.Fatal("expected IRR_H1 to fire")
	}
	if rw.Stem != "까맣" {
		t.Errorf("got stem %q, want 까맣", rw.Stem)
	}
}

func TestTryIrrH2(t *testing.T) {
	rw, ok := TryIrrH2("어", "때")
	if !ok {
		t.Fatal("expected IRR_H2 to fire")
	}
	if rw.Stem != "어떻" || rw.Ending != "어" {
		t.Errorf("got %+v", rw)
	}
}

func TestTryIrrLeu(t *testing.T) {
	rw, ok := TryIrrLeu("몰", "라")
	if !ok {
		t.Fatal("expected IRR_LEU to fire")
	}
	if rw.Stem != "모르" || rw.Ending != "아" {
		t.Errorf("got %+v", rw)
	}
}

func TestTryIrrLeo(t *testing.T) {
	rw, ok := TryIrrLeo("이르", "러")
	if !ok {
		t.Fatal("expected IRR_LEO to fire")
	}
	if rw.Ending != "어" {
		t.Errorf("got ending %q, want 어", rw.Ending)
	}
}

func TestTryIrrO(t *testing.T) {
	rw, ok := TryIrrO("다", "오")
	if !ok {
		t.Fatal("expected IRR_O to fire")
	}
	if rw.Stem != "달" || rw.Ending != "아라" {
		t.Errorf("got %+v", rw)
	}
}

func TestTryIrrB(t *testing.T) {
	rw, ok := TryIrrB("주", "워")
	if !ok {
		t.Fatal("expected IRR_B to fire")
	}
	if rw.Stem != "줍" || rw.Ending != "어" {
		t.Errorf("got %+v", rw)
	}
}

func TestTryAbbHae(t *testing.T) {
	rw, ok := TryAbbHae("간편", "해서")
	if !ok {
		t.Fatal("expected ABB_HAE to fire")
	}
	if rw.Stem != "간편하" || rw.Ending != "여서" {
		t.Errorf("got %+v", rw)
	}
}

func TestTryAbbAspirate(t *testing.T) {
	rw, ok := TryAbbAspirate("간편", "케")
	if !ok {
		t.Fatal("expected ABB_ASPIRATE to fire")
	}
	if rw.Stem != "간편하" || rw.Ending != "게" {
		t.Errorf("got %+v", rw)
	}
}

func TestTryDropoutHa(t *testing.T) {
	rw, ok := TryDropoutHa("거북", "지")
	if !ok {
		t.Fatal("expected DROPOUT_HA to fire")
	}
	if rw.Stem != "거북하" {
		t.Errorf("got stem %q, want 거북하", rw.Stem)
	}
}

func TestTryAbbJanh(t *testing.T) {
	rw, ok := TryAbbJanh("거북", "찮다")
	if !ok {
		t.Fatal("expected ABB_JANH to fire")
	}
	if rw.Ending != "하지않다" {
		t.Errorf("got ending %q, want 하지않다", rw.Ending)
	}
}

func TestApplyFiltersAbbreviationUnderEP(t *testing.T) {
	rws := Apply("간편", "해서", PosSet{"EP": true})
	for _, rw := range rws {
		if rw.Tag == AbbHae {
			t.Fatal("ABB_HAE should not fire while posFilter is EP-only")
		}
	}
	rws = Apply("간편", "해서", nil)
	found := false
	for _, rw := range rws {
		if rw.Tag == AbbHae {
			found = true
		}
	}
	if !found {
		t.Fatal("expected ABB_HAE to fire with unrestricted posFilter")
	}
}

func TestTagString(t *testing.T) {
	if IrrD.String() != "IRR_D" {
		t.Errorf("IrrD.String() = %q", IrrD.String())
	}
}
