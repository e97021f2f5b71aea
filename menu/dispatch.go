package menu

// Input handles one frame of menu input.
func (s *Session) Input(f Frame) (Outcome, error) {
	s.edit(f)
	if s.editing {
		return OutcomeContinue, nil
	}

	if f.Pressed(ButtonEscape) && s.state.ID != MenuMain {
		return LoadMain(s, 0)
	}

	st := &s.state
	if len(st.Options) == 0 {
		return OutcomeContinue, nil
	}
	delay := s.ctx.RepeatDelay

	if f.fires(ButtonUp, delay) && st.move(-1) && f.Pressed(ButtonUp) {
		s.cue(CueMenuChoose)
	}
	if f.fires(ButtonDown, delay) && st.move(1) && f.Pressed(ButtonDown) {
		s.cue(CueMenuChoose)
	}
	if st.paged() {
		if f.fires(ButtonLeft, delay) {
			st.turnPage(-1)
		}
		if f.fires(ButtonRight, delay) {
			st.turnPage(1)
		}
	}

	s.remember()
	s.retarget()

	o := st.Selected()
	if o == nil {
		return OutcomeContinue, nil
	}
	confirm := f.Pressed(ButtonConfirm) || f.Pressed(ButtonStart)

	switch o.Kind {
	case KindAction:
		d := o.Action()
		if confirm && d.Func != nil {
			out, err := d.Func(s, d.Val)
			if out == OutcomeTerminate {
				s.logger.Info("received quit signal")
			}
			return out, err
		}

	case KindMultiOpt:
		if st.paged() {
			break
		}
		d := o.Multi()
		changed := false
		if f.fires(ButtonLeft, delay) && d.step(-1) {
			changed = true
		}
		if f.fires(ButtonRight, delay) && d.step(1) {
			changed = true
		}
		if changed && o.OnUpdate != nil {
			o.OnUpdate(s)
		}

	case KindToggle:
		if st.paged() {
			break
		}
		if f.Pressed(ButtonConfirm) || f.Pressed(ButtonLeft) || f.Pressed(ButtonRight) {
			o.Toggle().flip()
			if o.OnUpdate != nil {
				o.OnUpdate(s)
			}
		}

	case KindGame:
		if confirm {
			d := o.Game()
			if d.Engine == EngineQuintesse {
				s.tryLaunch(d.Args)
			}
		}

	case KindGameMulti:
		d := o.GameMulti()
		if !st.paged() {
			changed := false
			if f.fires(ButtonLeft, delay) && d.step(-1) {
				changed = true
			}
			if f.fires(ButtonRight, delay) && d.step(1) {
				changed = true
			}
			if changed && o.OnUpdate != nil {
				o.OnUpdate(s)
			}
			if st.ID == MenuMain {
				s.main.OptSelection = d.Selection
			}
		}
		if confirm && d.Engine == EngineQuintesse {
			s.tryLaunch(d.Selected())
		}

	case KindMetaGame, KindTextInput, KindLabel:
	}

	return OutcomeContinue, nil
}

// edit routes edit commands to the text target. Only the toggle works
// outside edit mode.
func (s *Session) edit(f Frame) {
	if f.EmergencyOverride {
		return
	}
	for _, cmd := range f.Edits {
		if s.target == nil {
			return
		}
		t := s.target.Text()
		if t == nil {
			return
		}
		if cmd.Op == TextToggle {
			s.editing = !s.editing
			t.active = s.editing
			continue
		}
		if !s.editing {
			continue
		}

		var err error
		notify := true
		switch cmd.Op {
		case TextInsert:
			t.Insert(cmd.Text)
		case TextBackspace:
			t.Backspace()
		case TextDelete:
			t.Delete()
		case TextCopy:
			err = t.Copy(s.ctx.Clipboard)
		case TextCut:
			err = t.Cut(s.ctx.Clipboard)
		case TextPaste:
			err = t.Paste(s.ctx.Clipboard)
		case TextSeekLeft:
			t.SeekLeft()
			notify = false
		case TextSeekRight:
			t.SeekRight()
			notify = false
		case TextSeekHome:
			t.SeekHome()
			notify = false
		case TextSeekEnd:
			t.SeekEnd()
			notify = false
		case TextSelectAll:
			t.ToggleSelectAll()
			notify = false
		default:
			notify = false
		}
		if err != nil {
			s.logger.Warn("clipboard", "op", cmd.Op, "err", err)
		}
		if notify && s.target.OnUpdate != nil {
			s.target.OnUpdate(s)
		}
	}
}
